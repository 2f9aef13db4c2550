// internal/resumosemanal/status.go
package resumosemanal

import (
	"errors"
	"fmt"
)

// Status é o estado de aprovação/pagamento de um resumo semanal.
// A progressão é estritamente para a frente e só avança por ação explícita
// (aprovação manual, upload de recibo, upload de comprovativo, liquidação).
type Status string

const (
	StatusPendente             Status = "pendente"
	StatusAprovado             Status = "aprovado"
	StatusAguardarRecibo       Status = "aguardar_recibo"
	StatusReciboEnviado        Status = "recibo_enviado"
	StatusVerificarRecibo      Status = "verificar_recibo"
	StatusAPagamento           Status = "a_pagamento"
	StatusPagamentoPendente    Status = "pagamento_pendente"
	StatusPagamentoProcessando Status = "pagamento_processando"
	StatusLiquidado            Status = "liquidado"
)

// StatusTodos é o wildcard aceite nos filtros de listagem.
const StatusTodos = "todos"

// ordem é a única fonte de verdade da progressão do ciclo de vida.
var ordem = []Status{
	StatusPendente,
	StatusAprovado,
	StatusAguardarRecibo,
	StatusReciboEnviado,
	StatusVerificarRecibo,
	StatusAPagamento,
	StatusPagamentoPendente,
	StatusPagamentoProcessando,
	StatusLiquidado,
}

var posicao = func() map[Status]int {
	m := make(map[Status]int, len(ordem))
	for i, s := range ordem {
		m[s] = i
	}
	return m
}()

var (
	// ErrStatusDesconhecido indica um valor fora da enumeração.
	ErrStatusDesconhecido = errors.New("status desconhecido")
	// ErrTransicaoInvalida indica uma tentativa de recuar no ciclo de vida.
	ErrTransicaoInvalida = errors.New("transição de status inválida")
	// ErrComprovativoEmFalta bloqueia a liquidação sem comprovativo anexado.
	ErrComprovativoEmFalta = errors.New("liquidação exige comprovativo de pagamento anexado")
)

// StatusValidos devolve a lista ordenada completa de estados.
func StatusValidos() []Status {
	out := make([]Status, len(ordem))
	copy(out, ordem)
	return out
}

// Valido indica se o valor pertence à enumeração.
func (s Status) Valido() bool {
	_, ok := posicao[s]
	return ok
}

// ValidarTransicao verifica se o registo pode passar do estado atual para o
// pedido. Saltar estados intermédios é permitido (alguns só existem em
// fluxos específicos); recuar nunca é. Liquidar exige comprovativo.
func ValidarTransicao(r *ResumoSemanal, destino Status) error {
	de, ok := posicao[r.Status]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStatusDesconhecido, r.Status)
	}
	para, ok := posicao[destino]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStatusDesconhecido, destino)
	}
	if para <= de {
		return fmt.Errorf("%w: %q → %q", ErrTransicaoInvalida, r.Status, destino)
	}
	if destino == StatusLiquidado && r.Comprovativo == "" {
		return ErrComprovativoEmFalta
	}
	return nil
}

// AposUploadRecibo devolve o estado resultante do upload de um recibo:
// um registo aprovado avança automaticamente para aguardar_recibo; nos
// restantes estados o upload não mexe no ciclo de vida.
func AposUploadRecibo(atual Status) Status {
	if atual == StatusAprovado {
		return StatusAguardarRecibo
	}
	return atual
}

// FiltrarPorStatus devolve o subconjunto com o status pedido. O wildcard
// "todos" (ou filtro vazio) devolve o conjunto completo.
func FiltrarPorStatus(registos []ResumoSemanal, filtro string) []ResumoSemanal {
	if filtro == "" || filtro == StatusTodos {
		return registos
	}
	out := make([]ResumoSemanal, 0, len(registos))
	for _, r := range registos {
		if string(r.Status) == filtro {
			out = append(out, r)
		}
	}
	return out
}
