// Package ofx parses OFX/QFX bank statements into expense records.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/vitahq/vita/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// categoryKeywords maps statement-description fragments to expense
// categories. Anything unmatched falls into Other.
var categoryKeywords = map[model.ExpenseCategory][]string{
	model.CategoryFood:      {"swiggy", "zomato", "restaurant", "cafe", "grocer", "bigbasket", "blinkit", "food"},
	model.CategoryTransport: {"uber", "ola", "metro", "fuel", "petrol", "irctc", "rapido"},
	model.CategoryRent:      {"rent", "landlord", "housing"},
	model.CategoryFun:       {"netflix", "spotify", "prime", "hotstar", "bookmyshow", "game", "steam"},
}

// preprocess fixes common formatting issues in OFX files.
func (p *Parser) preprocess(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX statement and returns the debits as
// expense records. Credits (salary, refunds) are skipped; vita tracks
// income as the configured salary, not per-credit.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Expense, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var expenses []model.Expense
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			expenses = append(expenses, p.convertTransactions(stmt.BankTranList.Transactions, model.PaymentUPI)...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			expenses = append(expenses, p.convertTransactions(stmt.BankTranList.Transactions, model.PaymentCard)...)
		}
	}

	slog.Debug("Parsed OFX statement",
		"bank_statements", bankStmts,
		"cc_statements", ccStmts,
		"expenses", len(expenses))

	return expenses, nil
}

// convertTransactions maps OFX debits to expense records.
func (p *Parser) convertTransactions(txns []ofxgo.Transaction, payment model.PaymentMethod) []model.Expense {
	var expenses []model.Expense
	for _, ofxTx := range txns {
		// OFX uses negative amounts for debits; credits are not expenses.
		amount, _ := ofxTx.TrnAmt.Float64()
		if amount >= 0 {
			continue
		}

		note := p.extractDescription(ofxTx)
		expenses = append(expenses, model.Expense{
			Amount:        -amount,
			Category:      GuessCategory(note),
			Date:          ofxTx.DtPosted.Time.Format(model.DayLayout),
			Note:          note,
			PaymentMethod: payment,
		})
	}
	return expenses
}

// extractDescription gets the most useful description from OFX data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if name == "" && tx.Memo != "" {
		name = strings.TrimSpace(string(tx.Memo))
	}
	return name
}

// GuessCategory maps a statement description to an expense category by
// keyword match.
func GuessCategory(description string) model.ExpenseCategory {
	desc := strings.ToLower(description)
	for _, cat := range model.ExpenseCategories {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(desc, kw) {
				return cat
			}
		}
	}
	return model.CategoryOther
}
