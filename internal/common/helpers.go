package common

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	ETHDecimals = 18 // ETH has 18 decimals (wei)
)

// EtherToWei converts an ETH decimal string to wei without float precision loss
func EtherToWei(eth string) (*big.Int, error) {
	return ParseUnits(eth, ETHDecimals)
}

// WeiToEther converts wei to an ETH decimal string without float precision loss
func WeiToEther(wei *big.Int) string {
	return FormatUnits(wei, ETHDecimals)
}

// FormatUnits converts integer to decimal string by inserting decimal point
// Example: FormatUnits(24981836, 9) = "0.024981836"
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		value = new(big.Int)
	}

	neg := value.Sign() < 0
	s := new(big.Int).Abs(value).String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	out := s[:pos]
	if decimals > 0 {
		out += "." + s[pos:]
	}
	if neg {
		out = "-" + out
	}
	return out
}

// ParseUnits converts decimal string to integer by removing decimal point
// Example: ParseUnits("0.024981836", 9) = 24981836
// Fractional digits beyond decimals are truncated.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("invalid decimal format")
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("invalid number %q", s)
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	n, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ShortAddress shortens a hex address for display: 0x1234...abcd
func ShortAddress(hex string) string {
	if len(hex) <= 12 {
		return hex
	}
	return fmt.Sprintf("%s...%s", hex[:6], hex[len(hex)-4:])
}
