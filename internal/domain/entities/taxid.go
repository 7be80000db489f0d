package entities

// IsValidCPF checks length and both check digits of a CPF (digits only).
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 || !allDigits(cpf) || repeated(cpf) {
		return false
	}
	d := digits(cpf)
	return d[9] == cpfDigit(d[:9]) && d[10] == cpfDigit(d[:10])
}

// IsValidCNPJ checks length and both check digits of a CNPJ (digits only).
func IsValidCNPJ(cnpj string) bool {
	if len(cnpj) != 14 || !allDigits(cnpj) || repeated(cnpj) {
		return false
	}
	d := digits(cnpj)
	first := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	second := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return d[12] == cnpjDigit(d[:12], first) && d[13] == cnpjDigit(d[:13], second)
}

func cpfDigit(d []int) int {
	sum := 0
	weight := len(d) + 1
	for _, v := range d {
		sum += v * weight
		weight--
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

func cnpjDigit(d []int, weights []int) int {
	sum := 0
	for i, v := range d {
		sum += v * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func digits(s string) []int {
	out := make([]int, len(s))
	for i := range s {
		out[i] = int(s[i] - '0')
	}
	return out
}

func allDigits(s string) bool {
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func repeated(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
