// Package dateutil concentra o tratamento de datas no formato "YYYY-MM-DD"
// usado em todo o sistema (nascimento de trabalhadores, datas de atribuição).
package dateutil

import (
	"fmt"
	"time"
)

// Layout é o formato de data trocado com os clientes da API.
const Layout = "2006-01-02"

// ParseDate extrai ano, mês e dia de uma string no formato "<int>-<int>-<int>".
// A verificação é apenas de forma: valores como mês 13 ou dia 40 são aceitos,
// pois não há checagem de validade de calendário.
func ParseDate(text string) (year, month, day int, err error) {
	n, err := fmt.Sscanf(text, "%d-%d-%d", &year, &month, &day)
	if err != nil || n != 3 {
		return 0, 0, 0, fmt.Errorf("data inválida %q (use YYYY-MM-DD)", text)
	}
	return year, month, day, nil
}

// AgeInYears calcula a idade em anos completos de quem nasceu em
// (year, month, day), comparando mês e dia com a data de referência
// (comparação de calendário, não aritmética de 365 dias).
func AgeInYears(year, month, day int, today time.Time) int {
	age := today.Year() - year
	if int(today.Month()) < month || (int(today.Month()) == month && today.Day() < day) {
		age--
	}
	return age
}

// Today retorna a data local atual no formato "YYYY-MM-DD".
func Today() string {
	return time.Now().Format(Layout)
}
