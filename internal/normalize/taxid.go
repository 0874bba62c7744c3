package normalize

import "strings"

const cpfDigits = 11

// OnlyDigits strips every non-digit character.
func OnlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCNPJ reduces a CNPJ to its canonical digits-only form,
// e.g. "12.345.678/0001-90" → "12345678000190".
func NormalizeCNPJ(s string) string {
	return OnlyDigits(s)
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Inputs of any other
// length come back digits-only.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) != cpfDigits {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// ValidateCPF checks the CPF check digits. Repeated-digit sequences such as
// "11111111111" are rejected even though their checksum passes.
func ValidateCPF(raw string) bool {
	cpf := OnlyDigits(raw)
	if len(cpf) != cpfDigits {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	check := (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	if check != int(cpf[9]-'0') {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	check = (sum * 10) % 11
	if check == 10 {
		check = 0
	}
	return check == int(cpf[10]-'0')
}
