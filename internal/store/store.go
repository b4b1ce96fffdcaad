// Package store persists the books as plain CSV files in a directory (the
// "books root") and owns the mutation invariants between entities. Report
// code never touches the store; it receives read-only snapshots of these
// collections.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tallybook-dev/tallybook/internal/id"
	"github.com/tallybook-dev/tallybook/internal/model"
	"github.com/tallybook-dev/tallybook/internal/voucher"
)

// File names inside a books root.
const (
	TransactionsFile  = "transactions.csv"
	CategoriesFile    = "categories.csv"
	BillsFile         = "bills.csv"
	LedgersFile       = "ledgers.csv"
	AccountGroupsFile = "account-groups.csv"
	VouchersFile      = "vouchers.csv"
)

// Books holds every collection of a books root in memory. Load/Save move
// the whole set; mutators enforce cross-entity invariants.
type Books struct {
	root         string
	transactions []model.Transaction
	categories   []model.Category
	bills        []model.Bill
	ledgers      []model.Ledger
	groups       []model.AccountGroup
	vouchers     []model.Voucher
}

// New returns empty Books rooted at dir.
func New(dir string) *Books {
	return &Books{root: dir}
}

// Load reads all collections from a books root. Missing files load as empty
// collections; malformed rows are errors.
func Load(dir string) (*Books, error) {
	b := New(dir)

	if err := loadFile(dir, TransactionsFile, ReadTransactions, &b.transactions); err != nil {
		return nil, err
	}
	if err := loadFile(dir, CategoriesFile, ReadCategories, &b.categories); err != nil {
		return nil, err
	}
	if err := loadFile(dir, BillsFile, ReadBills, &b.bills); err != nil {
		return nil, err
	}
	if err := loadFile(dir, LedgersFile, ReadLedgers, &b.ledgers); err != nil {
		return nil, err
	}
	if err := loadFile(dir, AccountGroupsFile, ReadAccountGroups, &b.groups); err != nil {
		return nil, err
	}
	if err := loadFile(dir, VouchersFile, ReadVouchers, &b.vouchers); err != nil {
		return nil, err
	}
	return b, nil
}

func loadFile[T any](dir, name string, read func(io.Reader) ([]T, error), dst *[]T) error {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	items, err := read(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	*dst = items
	return nil
}

// Save writes every collection back to the books root.
func (b *Books) Save() error {
	if err := os.MkdirAll(b.root, 0o755); err != nil {
		return fmt.Errorf("creating books root: %w", err)
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{TransactionsFile, func(w io.Writer) error { return WriteTransactions(w, b.transactions) }},
		{CategoriesFile, func(w io.Writer) error { return WriteCategories(w, b.categories) }},
		{BillsFile, func(w io.Writer) error { return WriteBills(w, b.bills) }},
		{LedgersFile, func(w io.Writer) error { return WriteLedgers(w, b.ledgers) }},
		{AccountGroupsFile, func(w io.Writer) error { return WriteAccountGroups(w, b.groups) }},
		{VouchersFile, func(w io.Writer) error { return WriteVouchers(w, b.vouchers) }},
	}
	for _, wr := range writers {
		if err := writeFile(b.root, wr.name, wr.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(dir, name string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// Root returns the books root directory.
func (b *Books) Root() string { return b.root }

// Snapshot accessors. Callers treat the returned slices as read-only.

func (b *Books) Transactions() []model.Transaction   { return b.transactions }
func (b *Books) Categories() []model.Category        { return b.categories }
func (b *Books) Bills() []model.Bill                 { return b.bills }
func (b *Books) Ledgers() []model.Ledger             { return b.ledgers }
func (b *Books) AccountGroups() []model.AccountGroup { return b.groups }
func (b *Books) Vouchers() []model.Voucher           { return b.vouchers }

// AddTransaction validates and appends a transaction, assigning an ID when
// absent. Amounts must be non-negative: direction lives in the type.
func (b *Books) AddTransaction(t model.Transaction) (model.Transaction, error) {
	if !t.Type.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("negative amount %s: use type %q instead", t.Amount, model.TypeExpense)
	}
	if t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("transaction date is required")
	}
	if t.Currency == "" {
		return model.Transaction{}, fmt.Errorf("transaction currency is required")
	}
	if t.ID == "" {
		t.ID = id.New()
	}
	b.transactions = append(b.transactions, t)
	return t, nil
}

// UpdateTransaction replaces the transaction with the same ID.
func (b *Books) UpdateTransaction(t model.Transaction) error {
	for i := range b.transactions {
		if b.transactions[i].ID == t.ID {
			b.transactions[i] = t
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found", t.ID)
}

// DeleteTransaction removes a transaction by ID.
func (b *Books) DeleteTransaction(txID string) error {
	for i := range b.transactions {
		if b.transactions[i].ID == txID {
			b.transactions = append(b.transactions[:i], b.transactions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found", txID)
}

// AddCategory appends a category, assigning an ID when absent.
func (b *Books) AddCategory(c model.Category) (model.Category, error) {
	if c.Name == "" {
		return model.Category{}, fmt.Errorf("category name is required")
	}
	if c.ID == "" {
		c.ID = id.New()
	}
	b.categories = append(b.categories, c)
	return c, nil
}

// DeleteCategory removes a category and clears the category reference on
// its transactions. The transactions themselves survive, become
// uncategorized, and keep counting toward period totals.
func (b *Books) DeleteCategory(catID string) error {
	idx := -1
	for i := range b.categories {
		if b.categories[i].ID == catID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("category %q not found", catID)
	}
	b.categories = append(b.categories[:idx], b.categories[idx+1:]...)

	for i := range b.transactions {
		if b.transactions[i].CategoryID == catID {
			b.transactions[i].CategoryID = ""
		}
	}
	return nil
}

// AddBill appends a bill, assigning an ID when absent.
func (b *Books) AddBill(bill model.Bill) (model.Bill, error) {
	if bill.Name == "" {
		return model.Bill{}, fmt.Errorf("bill name is required")
	}
	if bill.DueDate.IsZero() {
		return model.Bill{}, fmt.Errorf("bill due date is required")
	}
	if bill.ID == "" {
		bill.ID = id.New()
	}
	b.bills = append(b.bills, bill)
	return bill, nil
}

// PayBill marks a bill paid.
func (b *Books) PayBill(billID string) error {
	for i := range b.bills {
		if b.bills[i].ID == billID {
			b.bills[i].IsPaid = true
			return nil
		}
	}
	return fmt.Errorf("bill %q not found", billID)
}

// DeleteBill removes a bill by ID.
func (b *Books) DeleteBill(billID string) error {
	for i := range b.bills {
		if b.bills[i].ID == billID {
			b.bills = append(b.bills[:i], b.bills[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("bill %q not found", billID)
}

// AddLedger appends a ledger, assigning an ID when absent. The account
// group must exist.
func (b *Books) AddLedger(l model.Ledger) (model.Ledger, error) {
	if l.Name == "" {
		return model.Ledger{}, fmt.Errorf("ledger name is required")
	}
	if !b.groupExists(l.AccountGroupID) {
		return model.Ledger{}, fmt.Errorf("unknown account group %q", l.AccountGroupID)
	}
	if l.ID == "" {
		l.ID = id.New()
	}
	b.ledgers = append(b.ledgers, l)
	return l, nil
}

// DeleteLedger removes a ledger. Ledgers referenced by voucher legs cannot
// be deleted; vouchers must stay balanced against real accounts.
func (b *Books) DeleteLedger(ledgerID string) error {
	for _, v := range b.vouchers {
		for _, e := range v.Entries {
			if e.LedgerID == ledgerID {
				return fmt.Errorf("ledger %q is referenced by voucher %s", ledgerID, v.ID)
			}
		}
	}
	for i := range b.ledgers {
		if b.ledgers[i].ID == ledgerID {
			b.ledgers = append(b.ledgers[:i], b.ledgers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("ledger %q not found", ledgerID)
}

// AddAccountGroup appends a group, assigning an ID when absent. A non-empty
// parent must exist.
func (b *Books) AddAccountGroup(g model.AccountGroup) (model.AccountGroup, error) {
	if g.Name == "" {
		return model.AccountGroup{}, fmt.Errorf("account group name is required")
	}
	if g.ParentID != "" && !b.groupExists(g.ParentID) {
		return model.AccountGroup{}, fmt.Errorf("unknown parent group %q", g.ParentID)
	}
	if g.ID == "" {
		g.ID = id.New()
	}
	b.groups = append(b.groups, g)
	return g, nil
}

// DeleteAccountGroup removes a group and every descendant group, however
// deep. The default chart nests three levels, so a one-level cascade would
// strand grandchildren.
func (b *Books) DeleteAccountGroup(groupID string) error {
	if !b.groupExists(groupID) {
		return fmt.Errorf("account group %q not found", groupID)
	}

	doomed := map[string]bool{groupID: true}
	for {
		grew := false
		for _, g := range b.groups {
			if !doomed[g.ID] && doomed[g.ParentID] {
				doomed[g.ID] = true
				grew = true
			}
		}
		if !grew {
			break
		}
	}

	kept := b.groups[:0]
	for _, g := range b.groups {
		if !doomed[g.ID] {
			kept = append(kept, g)
		}
	}
	b.groups = kept
	return nil
}

func (b *Books) groupExists(groupID string) bool {
	for _, g := range b.groups {
		if g.ID == groupID {
			return true
		}
	}
	return false
}

// ledgerIndex implements voucher.LedgerChecker over the books' ledgers.
type ledgerIndex map[string]bool

func (ix ledgerIndex) Exists(ledgerID string) bool { return ix[ledgerID] }

func (b *Books) ledgerIDs() ledgerIndex {
	ix := make(ledgerIndex, len(b.ledgers))
	for _, l := range b.ledgers {
		ix[l.ID] = true
	}
	return ix
}

// CreateVoucher validates and appends a voucher, assigning its ID and a
// sequential month number. An invalid voucher is rejected whole and nothing
// is stored.
func (b *Books) CreateVoucher(v model.Voucher) (model.Voucher, error) {
	if v.ID == "" {
		v.ID = id.New()
	}
	if v.Number == "" {
		v.Number = id.FormatVoucherNumber(v.Date.Year(), int(v.Date.Month()), b.nextVoucherSeq(v.Date.Year(), int(v.Date.Month())))
	}

	if verrs := voucher.Validate(v, b.ledgerIDs()); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return model.Voucher{}, fmt.Errorf("voucher rejected: %s", strings.Join(msgs, "; "))
	}

	b.vouchers = append(b.vouchers, v)
	return v, nil
}

// DeleteVoucher removes a voucher by ID.
func (b *Books) DeleteVoucher(voucherID string) error {
	for i := range b.vouchers {
		if b.vouchers[i].ID == voucherID {
			b.vouchers = append(b.vouchers[:i], b.vouchers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("voucher %q not found", voucherID)
}

// nextVoucherSeq returns the next sequence number within a year/month.
func (b *Books) nextVoucherSeq(year, month int) int {
	maxSeq := 0
	for _, v := range b.vouchers {
		y, m, seq, err := id.ParseVoucherNumber(v.Number)
		if err != nil || y != year || m != month {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
