package collections_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-underbar/collections"
)

type account struct {
	owner   string
	balance int
}

func (a *account) Owner() string { return a.owner }

func (a *account) Deposit(n int) int {
	a.balance += n
	return a.balance
}

func (a *account) Tag(prefix string, parts ...string) string {
	return prefix + a.owner + strings.Join(parts, "")
}

var errOverdrawn = errors.New("overdrawn")

func (a *account) Withdraw(n int) (int, error) {
	if n > a.balance {
		return 0, errOverdrawn
	}
	a.balance -= n
	return a.balance, nil
}

func (a *account) Close() error { return nil }

func accounts() collections.Sequence[*account] {
	return collections.Sequence[*account]{
		{owner: "ann", balance: 10},
		{owner: "bob", balance: 5},
	}
}

func TestInvokeByFunction(t *testing.T) {
	got, err := collections.Invoke(
		collections.Sequence[string]{"a", "b"},
		collections.ByFunction(func(s string, args ...any) string {
			return strings.Repeat(strings.ToUpper(s), args[0].(int))
		}),
		3,
	)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"AAA", "BBB"})
}

func TestInvokeByName(t *testing.T) {
	got, err := collections.Invoke(accounts(), collections.ByName[*account, string]("Owner"))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"ann", "bob"})
}

func TestInvokeByNameWithArgs(t *testing.T) {
	accs := accounts()
	got, err := collections.Invoke(accs, collections.ByName[*account, int]("Deposit"), 5)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{15, 10})
	if accs[0].balance != 15 {
		t.Fatalf("Deposit did not run on the element: balance %d", accs[0].balance)
	}
}

func TestInvokeByNameVariadic(t *testing.T) {
	m := collections.ByName[*account, string]("Tag")

	got, err := collections.Invoke(accounts(), m, "#")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"#ann", "#bob"})

	got, err = collections.Invoke(accounts(), m, "@", "-", "x")
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []string{"@ann-x", "@bob-x"})
}

func TestInvokeByNameErrorResult(t *testing.T) {
	got, err := collections.Invoke(accounts(), collections.ByName[*account, int]("Withdraw"), 3)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{7, 2})

	_, err = collections.Invoke(accounts(), collections.ByName[*account, int]("Withdraw"), 8)
	if !errors.Is(err, collections.ErrMethodFailed) {
		t.Fatalf("err = %v; want ErrMethodFailed", err)
	}
	if !errors.Is(err, errOverdrawn) {
		t.Fatalf("err = %v; want the method's own error in the chain", err)
	}
}

func TestInvokeByNameOnlyError(t *testing.T) {
	got, err := collections.Invoke(accounts(), collections.ByName[*account, any]("Close"))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []any{nil, nil})
}

func TestInvokeErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "unknown method",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, string]("Missing"))
				return err
			},
			want: collections.ErrMethodNotFound,
		},
		{
			name: "unexported method",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, string]("owner"))
				return err
			},
			want: collections.ErrMethodNotFound,
		},
		{
			name: "zero method",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.Method[*account, string]{})
				return err
			},
			want: collections.ErrMethodNotFound,
		},
		{
			name: "nil element",
			run: func() error {
				_, err := collections.Invoke(collections.Sequence[any]{nil}, collections.ByName[any, string]("Owner"))
				return err
			},
			want: collections.ErrMethodNotFound,
		},
		{
			name: "too few arguments",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, int]("Deposit"))
				return err
			},
			want: collections.ErrInvalidArguments,
		},
		{
			name: "wrong argument type",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, int]("Deposit"), "five")
				return err
			},
			want: collections.ErrInvalidArguments,
		},
		{
			name: "wrong variadic type",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, string]("Tag"), "#", 1)
				return err
			},
			want: collections.ErrInvalidArguments,
		},
		{
			name: "wrong result type",
			run: func() error {
				_, err := collections.Invoke(accounts(), collections.ByName[*account, int]("Owner"))
				return err
			},
			want: collections.ErrResultType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v; want %v", err, tt.want)
			}
		})
	}
}

func TestInvokeStopsAtFirstError(t *testing.T) {
	accs := collections.Sequence[*account]{
		{owner: "a", balance: 1},
		{owner: "b", balance: 0},
		{owner: "c", balance: 5},
	}
	_, err := collections.Invoke(accs, collections.ByName[*account, int]("Withdraw"), 1)
	if !errors.Is(err, collections.ErrMethodFailed) {
		t.Fatalf("err = %v; want ErrMethodFailed", err)
	}
	if accs[0].balance != 0 {
		t.Fatalf("first withdrawal did not run: balance %d", accs[0].balance)
	}
	if accs[2].balance != 5 {
		t.Fatal("Invoke kept calling after an error")
	}
}

func TestMethodString(t *testing.T) {
	if s := collections.ByName[*account, string]("Owner").String(); s != "Owner" {
		t.Fatalf("String() = %q", s)
	}
	if s := collections.ByFunction(func(a *account, _ ...any) string { return "" }).String(); s != "func" {
		t.Fatalf("String() = %q", s)
	}
	if s := collections.ByField[account]("age").String(); s != "age" {
		t.Fatalf("Criterion String() = %q", s)
	}
}
