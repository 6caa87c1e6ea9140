// Package uniqueness fornece um conjunto case-insensitive de chaves já
// registradas, usado para garantir unicidade global de um campo (e-mails de
// trabalhadores, nomes de projetos). Cada instância guarda o estado de um
// único campo; nunca compartilhe a mesma instância entre campos distintos.
package uniqueness

import "strings"

// Index é o conjunto de chaves registradas. A comparação é sempre feita
// sobre a forma minúscula da chave; a forma original é preservada em quem
// chama, não aqui. Busca linear: a escala de referência é de dezenas a
// poucas centenas de registros.
type Index struct {
	keys []string // sempre em minúsculas
}

// NewIndex cria um índice de unicidade vazio.
func NewIndex() *Index {
	return &Index{}
}

// Contains informa se a chave já está registrada (case-insensitive).
func (i *Index) Contains(key string) bool {
	low := strings.ToLower(key)
	for _, k := range i.keys {
		if k == low {
			return true
		}
	}
	return false
}

// Register adiciona a chave ao índice. O chamador garante que a chave não é
// duplicada (na prática, sempre consulta Contains antes).
func (i *Index) Register(key string) {
	i.keys = append(i.keys, strings.ToLower(key))
}

// Release remove a primeira ocorrência da chave; não faz nada se ausente.
// Usado quando um campo único é renomeado, liberando o valor antigo.
func (i *Index) Release(key string) {
	low := strings.ToLower(key)
	for idx, k := range i.keys {
		if k == low {
			i.keys = append(i.keys[:idx], i.keys[idx+1:]...)
			return
		}
	}
}

// Len retorna a quantidade de chaves registradas.
func (i *Index) Len() int {
	return len(i.keys)
}
