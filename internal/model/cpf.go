package model

// ValidarCPF confere os dois dígitos verificadores do CPF.
// CPFs com todos os dígitos repetidos passam no cálculo mas são inválidos.
func ValidarCPF(cpf string) bool {
	if !cpfRegex.MatchString(cpf) {
		return false
	}

	repetido := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			repetido = false
			break
		}
	}
	if repetido {
		return false
	}

	return int(cpf[9]-'0') == digitoVerificador(cpf, 9) &&
		int(cpf[10]-'0') == digitoVerificador(cpf, 10)
}

func digitoVerificador(cpf string, n int) int {
	soma := 0
	for i := 0; i < n; i++ {
		soma += int(cpf[i]-'0') * (n + 1 - i)
	}
	resto := soma * 10 % 11
	if resto == 10 {
		return 0
	}
	return resto
}
