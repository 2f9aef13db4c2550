// internal/semana/semana.go
package semana

import "time"

// Pacote semana centraliza toda a aritmética de (semana, ano) ISO-8601.
// Os ecrãs financeiros usam sempre este par como chave de período; qualquer
// outro cálculo de número de semana está errado por definição.

// Numero devolve o par (semana, ano) ISO-8601 para uma data.
// O ano devolvido é o ano ISO, que pode diferir do ano civil nas
// primeiras/últimas semanas (ex.: 2021-01-01 pertence à semana 53 de 2020).
func Numero(t time.Time) (semana, ano int) {
	ano, semana = t.UTC().ISOWeek()
	return semana, ano
}

// Atual devolve o par (semana, ano) da data corrente.
func Atual() (semana, ano int) {
	return Numero(time.Now())
}

// Semanas devolve quantas semanas ISO tem o ano (52 ou 53).
// O dia 28 de dezembro pertence sempre à última semana do ano ISO.
func Semanas(ano int) int {
	_, s := time.Date(ano, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return s
}

// Intervalo devolve o primeiro dia (segunda-feira, 00:00 UTC) e o último dia
// (domingo, 00:00 UTC) da semana ISO pedida.
func Intervalo(semana, ano int) (inicio, fim time.Time) {
	// 4 de janeiro está sempre na semana 1 do ano ISO.
	ancora := time.Date(ano, time.January, 4, 0, 0, 0, 0, time.UTC)
	diaSemana := int(ancora.Weekday())
	if diaSemana == 0 {
		diaSemana = 7 // domingo conta como 7 na convenção ISO
	}
	segundaSemana1 := ancora.AddDate(0, 0, 1-diaSemana)
	inicio = segundaSemana1.AddDate(0, 0, (semana-1)*7)
	fim = inicio.AddDate(0, 0, 6)
	return inicio, fim
}

// Anterior devolve a semana anterior, recuando de ano quando necessário.
func Anterior(semana, ano int) (int, int) {
	if semana <= 1 {
		return Semanas(ano - 1), ano - 1
	}
	return semana - 1, ano
}

// Proxima devolve a semana seguinte, avançando de ano quando necessário.
func Proxima(semana, ano int) (int, int) {
	if semana >= Semanas(ano) {
		return 1, ano + 1
	}
	return semana + 1, ano
}

// Valida indica se o par (semana, ano) identifica uma semana ISO existente.
// Anos não positivos nunca são chave de período válida.
func Valida(semana, ano int) bool {
	return ano >= 1 && semana >= 1 && semana <= Semanas(ano)
}
