package enums

import "fmt"

// WalletKind maps to the wallet_kind_enum enum in Postgres.
type WalletKind string

const (
	WalletKindCash WalletKind = "cash"
	WalletKindBank WalletKind = "bank"
)

var validWalletKinds = []WalletKind{
	WalletKindCash,
	WalletKindBank,
}

// IsValid reports whether the value matches the canonical wallet kind enum.
func (k WalletKind) IsValid() bool {
	for _, candidate := range validWalletKinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseWalletKind converts raw input into WalletKind.
func ParseWalletKind(value string) (WalletKind, error) {
	for _, candidate := range validWalletKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid wallet kind %q", value)
}
