package utils

import "strings"

// NaturalLess сравнивает строки с учетом числовых фрагментов:
// "CAM-2" < "CAM-10", хотя лексикографически это не так.
func NaturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			aNum, aRest := takeDigits(a)
			bNum, bRest := takeDigits(b)

			aTrim := strings.TrimLeft(aNum, "0")
			bTrim := strings.TrimLeft(bNum, "0")
			if len(aTrim) != len(bTrim) {
				return len(aTrim) < len(bTrim)
			}
			if aTrim != bTrim {
				return aTrim < bTrim
			}
			// Числа равны по значению - сравниваем ведущие нули,
			// чтобы порядок был тотальным.
			if aNum != bNum {
				return aNum < bNum
			}
			a, b = aRest, bRest
			continue
		}

		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func takeDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
