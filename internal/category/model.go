package category

const (
	// MovementIncome classifies money coming in.
	MovementIncome = "INCOME"
	// MovementExpense classifies money going out.
	MovementExpense = "EXPENSE"
	// MovementTransfer classifies movements between accounts.
	MovementTransfer = "TRANSFER"
)

// Category is a classification bucket for financial movements, scoped to one
// user.
type Category struct {
	ID         string
	Label      string
	OwnerLogin string
	Default    bool
	Movement   string
}

// Defaults returns the three default categories every new user starts with,
// one per movement kind.
func Defaults(ownerLogin string) []Category {
	return []Category{
		{Label: "RECEITA PADRAO", OwnerLogin: ownerLogin, Default: true, Movement: MovementIncome},
		{Label: "DESPESA PADRAO", OwnerLogin: ownerLogin, Default: true, Movement: MovementExpense},
		{Label: "TRANSFERENCIA PADRAO", OwnerLogin: ownerLogin, Default: true, Movement: MovementTransfer},
	}
}
