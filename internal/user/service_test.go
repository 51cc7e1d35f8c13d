package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bankline/bankline/internal/account"
	"github.com/bankline/bankline/internal/category"
	"github.com/bankline/bankline/internal/storage"
)

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) ([]byte, error) {
	return []byte("hashed:" + plaintext), nil
}

type failingAccounts struct{}

func (failingAccounts) SaveAll(context.Context, []account.Account) error {
	return errors.New("accounts store down")
}

func (failingAccounts) ListByOwner(context.Context, string) ([]account.Account, error) {
	return nil, nil
}

func newTestService() (*Service, *MemoryRepository, *account.MemoryRepository, *category.MemoryRepository) {
	users := NewMemoryRepository()
	accounts := account.NewMemoryRepository()
	categories := category.NewMemoryRepository()
	tx := storage.NewMemoryRunner(users, accounts, categories)
	svc := NewService(users, accounts, categories, tx, fakeHasher{})
	return svc, users, accounts, categories
}

func TestRegisterProvisionsAccountsAndCategories(t *testing.T) {
	svc, users, accounts, categories := newTestService()
	ctx := context.Background()

	profile, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if profile.Login != "alice" || profile.Name != "Alice" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	stored, err := users.FindByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if string(stored.PasswordHash) == "p@ss" {
		t.Fatal("password stored in plaintext")
	}
	if stored.ID == "" {
		t.Fatal("expected assigned identifier")
	}

	accs, err := accounts.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accs) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accs))
	}
	kinds := map[string]string{}
	for _, a := range accs {
		if a.Balance != 0 {
			t.Fatalf("expected zero balance, got %d", a.Balance)
		}
		kinds[a.Kind] = a.Label
	}
	if kinds[account.KindCredit] != "Conta Credito" || kinds[account.KindDebit] != "Conta Debito" {
		t.Fatalf("unexpected account kinds/labels: %v", kinds)
	}

	cats, err := categories.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	movements := map[string]bool{}
	for _, c := range cats {
		if !c.Default {
			t.Fatalf("category %s is not default", c.Label)
		}
		movements[c.Movement] = true
	}
	for _, m := range []string{category.MovementIncome, category.MovementExpense, category.MovementTransfer} {
		if !movements[m] {
			t.Fatalf("missing default category for movement %s", m)
		}
	}
}

func TestRegisterDuplicateCPF(t *testing.T) {
	svc, users, accounts, categories := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "bob", Name: "Bob", Password: "secret"})
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if !strings.Contains(err.Error(), "111") {
		t.Fatalf("duplicate error does not name the cpf: %v", err)
	}

	if _, err := users.FindByLogin(ctx, "bob"); !errors.Is(err, ErrNotExists) {
		t.Fatalf("duplicate attempt left a user behind: %v", err)
	}
	if accs, _ := accounts.ListByOwner(ctx, "bob"); len(accs) != 0 {
		t.Fatalf("duplicate attempt left %d accounts behind", len(accs))
	}
	if cats, _ := categories.ListByOwner(ctx, "bob"); len(cats) != 0 {
		t.Fatalf("duplicate attempt left %d categories behind", len(cats))
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Register(ctx, RegisterInput{CPF: "222", Login: "alice", Name: "Alina", Password: "secret"})
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Field != "login" || !strings.Contains(err.Error(), "alice") {
		t.Fatalf("duplicate error does not name the login: %v", err)
	}
}

func TestRegisterRequiredFields(t *testing.T) {
	svc, users, _, _ := newTestService()
	ctx := context.Background()

	inputs := []RegisterInput{
		{Login: "alice", Name: "Alice", Password: "p@ss"},
		{CPF: "111", Name: "Alice", Password: "p@ss"},
		{CPF: "111", Login: "alice", Password: "p@ss"},
		{CPF: "111", Login: "alice", Name: "Alice"},
	}
	for _, input := range inputs {
		_, err := svc.Register(ctx, input)
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("expected ValidationError for %+v, got %v", input, err)
		}
	}

	if _, err := users.FindByCPF(ctx, "111"); !errors.Is(err, ErrNotExists) {
		t.Fatalf("validation failure reached the store: %v", err)
	}
}

func TestRegisterRollsBackOnAccountFailure(t *testing.T) {
	users := NewMemoryRepository()
	categories := category.NewMemoryRepository()
	tx := storage.NewMemoryRunner(users, categories)
	svc := NewService(users, failingAccounts{}, categories, tx, fakeHasher{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"})
	var dep *DependencyError
	if !errors.As(err, &dep) {
		t.Fatalf("expected DependencyError, got %v", err)
	}

	if _, err := users.FindByLogin(ctx, "alice"); !errors.Is(err, ErrNotExists) {
		t.Fatalf("failed onboarding left the user visible: %v", err)
	}
	if cats, _ := categories.ListByOwner(ctx, "alice"); len(cats) != 0 {
		t.Fatalf("failed onboarding left %d categories behind", len(cats))
	}
}

func TestFindByID(t *testing.T) {
	svc, users, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	stored, err := users.FindByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}

	profile, err := svc.FindByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if profile.Login != "alice" || profile.Name != "Alice" {
		t.Fatalf("unexpected profile %+v", profile)
	}

	_, err = svc.FindByID(ctx, "missing-id")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing-id") {
		t.Fatalf("not found error does not name the id: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, users, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{CPF: "111", Login: "alice", Name: "Alice", Password: "p@ss"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(ctx, "alice", "n3w-secret"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	stored, err := users.FindByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if string(stored.PasswordHash) != "hashed:n3w-secret" {
		t.Fatalf("password hash not updated: %q", stored.PasswordHash)
	}
	if stored.CPF != "111" || stored.Name != "Alice" {
		t.Fatalf("change password mutated other fields: %+v", stored)
	}

	err = svc.ChangePassword(ctx, "nobody", "whatever")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if !strings.Contains(err.Error(), "nobody") {
		t.Fatalf("not found error does not name the login: %v", err)
	}
}
