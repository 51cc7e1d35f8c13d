package account

const (
	// KindCredit marks the credit account provisioned at onboarding.
	KindCredit = "CREDIT"
	// KindDebit marks the debit account provisioned at onboarding.
	KindDebit = "DEBIT"
)

// Account is a monetary account owned by a user. Balances are stored in
// cents.
type Account struct {
	ID         string
	Label      string
	OwnerLogin string
	Balance    int64
	Kind       string
}

// Defaults returns the two accounts every new user starts with, both at zero
// balance.
func Defaults(ownerLogin string) []Account {
	return []Account{
		{Label: "Conta Credito", OwnerLogin: ownerLogin, Balance: 0, Kind: KindCredit},
		{Label: "Conta Debito", OwnerLogin: ownerLogin, Balance: 0, Kind: KindDebit},
	}
}
