package validate

import "strings"

// IsCPF checks the two mod-11 verification digits of a Brazilian CPF.
// Accepts both masked (000.000.000-00) and bare 11-digit input.
func IsCPF(s string) bool {
	cleaned := strings.NewReplacer(".", "", "-", "", " ", "").Replace(s)
	if len(cleaned) != 11 {
		return false
	}

	digits := make([]int, 11)
	allEqual := true
	for i, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	// sequences like 000.000.000-00 pass the checksum but are not valid
	if allEqual {
		return false
	}

	return digits[9] == checkDigit(digits, 9) && digits[10] == checkDigit(digits, 10)
}

func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
