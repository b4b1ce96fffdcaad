package store

import "github.com/tallybook-dev/tallybook/internal/model"

// DefaultCategories returns the built-in category set seeded by init.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "cat-food", Name: "Food", Color: "bg-red-500", Icon: "Utensils"},
		{ID: "cat-rent", Name: "Rent", Color: "bg-blue-500", Icon: "Home"},
		{ID: "cat-transport", Name: "Transport", Color: "bg-green-500", Icon: "Car"},
		{ID: "cat-salary", Name: "Salary", Color: "bg-teal-500", Icon: "Briefcase"},
		{ID: "cat-entertainment", Name: "Entertainment", Color: "bg-purple-500", Icon: "Film"},
		{ID: "cat-shopping", Name: "Shopping", Color: "bg-pink-500", Icon: "ShoppingCart"},
		{ID: "cat-health", Name: "Health", Color: "bg-orange-500", Icon: "Heart"},
		{ID: "cat-education", Name: "Education", Color: "bg-indigo-500", Icon: "Book"},
	}
}

// DefaultAccountGroups returns the built-in chart of account groups: the
// five standard roots with common sub-groups nested up to three levels.
func DefaultAccountGroups() []model.AccountGroup {
	return []model.AccountGroup{
		{ID: "ag-assets", Name: "Assets", Type: model.GroupAsset},
		{ID: "ag-current-assets", Name: "Current Assets", ParentID: "ag-assets", Type: model.GroupAsset},
		{ID: "ag-bank-accounts", Name: "Bank Accounts", ParentID: "ag-current-assets", Type: model.GroupAsset},
		{ID: "ag-cash-in-hand", Name: "Cash-in-Hand", ParentID: "ag-current-assets", Type: model.GroupAsset},
		{ID: "ag-liabilities", Name: "Liabilities", Type: model.GroupLiability},
		{ID: "ag-current-liabilities", Name: "Current Liabilities", ParentID: "ag-liabilities", Type: model.GroupLiability},
		{ID: "ag-duties-taxes", Name: "Duties & Taxes", ParentID: "ag-current-liabilities", Type: model.GroupLiability},
		{ID: "ag-equity", Name: "Equity", Type: model.GroupEquity},
		{ID: "ag-income", Name: "Income", Type: model.GroupIncome},
		{ID: "ag-direct-income", Name: "Direct Income", ParentID: "ag-income", Type: model.GroupIncome},
		{ID: "ag-indirect-income", Name: "Indirect Income", ParentID: "ag-income", Type: model.GroupIncome},
		{ID: "ag-expenses", Name: "Expenses", Type: model.GroupExpense},
		{ID: "ag-direct-expenses", Name: "Direct Expenses", ParentID: "ag-expenses", Type: model.GroupExpense},
		{ID: "ag-indirect-expenses", Name: "Indirect Expenses", ParentID: "ag-expenses", Type: model.GroupExpense},
	}
}
