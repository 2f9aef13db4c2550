// internal/comissao/avaliador.go
package comissao

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrSemEscalao indica que nenhum escalão cobre o montante pedido
	// (montante negativo ou lista de escalões vazia). Nunca devolvemos
	// zero silencioso nesse caso.
	ErrSemEscalao = errors.New("sem escalão aplicável ao montante")
	// ErrNivelDesconhecido indica um nível de classificação inexistente.
	ErrNivelDesconhecido = errors.New("nível de classificação desconhecido")
	// ErrNiveisInvalidos agrupa as violações do invariante da escala.
	ErrNiveisInvalidos = errors.New("escalões inválidos")
)

// Resultado é o produto de uma simulação de comissão.
// O bónus é calculado sobre o montante faturado completo e somado à base;
// as percentagens somam-se, nunca se compõem.
type Resultado struct {
	Escalao            string  `json:"escalao"`
	PercentagemBase    float64 `json:"percentagemBase"`
	BonusPercentagem   float64 `json:"bonusPercentagem"`
	PercentagemTotal   float64 `json:"percentagemTotal"`
	ValorComissaoBase  float64 `json:"valorComissaoBase"`
	ValorBonus         float64 `json:"valorBonus"`
	ValorComissaoTotal float64 `json:"valorComissaoTotal"`
}

// EncontrarEscalao localiza o escalão cujo intervalo [min, max) contém o
// montante. Avalia por ordem ascendente de mínimo — primeiro a bater ganha —
// para o resultado ser determinístico mesmo que dados antigos tenham
// intervalos sobrepostos.
func EncontrarEscalao(niveis []EscalaNivel, montante float64) (*EscalaNivel, error) {
	if montante < 0 || len(niveis) == 0 {
		return nil, ErrSemEscalao
	}
	ordenados := make([]EscalaNivel, len(niveis))
	copy(ordenados, niveis)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].ValorMinimo < ordenados[j].ValorMinimo
	})
	for i := range ordenados {
		n := &ordenados[i]
		if montante < n.ValorMinimo {
			continue
		}
		if n.ValorMaximo == nil || montante < *n.ValorMaximo {
			return n, nil
		}
	}
	return nil, ErrSemEscalao
}

// Avaliar aplica escalão + bónus de classificação a um montante faturado.
func Avaliar(niveis []EscalaNivel, classificacao *NivelClassificacao, montante float64) (*Resultado, error) {
	escalao, err := EncontrarEscalao(niveis, montante)
	if err != nil {
		return nil, err
	}

	var bonus float64
	if classificacao != nil {
		bonus = classificacao.BonusPercentagem
	}

	base := montante * escalao.Percentagem / 100
	valorBonus := montante * bonus / 100

	return &Resultado{
		Escalao:            escalao.Nome,
		PercentagemBase:    escalao.Percentagem,
		BonusPercentagem:   bonus,
		PercentagemTotal:   escalao.Percentagem + bonus,
		ValorComissaoBase:  base,
		ValorBonus:         valorBonus,
		ValorComissaoTotal: base + valorBonus,
	}, nil
}

// ValidarNiveis garante o invariante da escala antes de gravar:
// ordenados por mínimo ascendente, contíguos, sem sobreposição, e no máximo
// um escalão ilimitado — o último. O cliente original não validava nada
// disto; aqui a escrita é rejeitada.
func ValidarNiveis(niveis []EscalaNivel) error {
	if len(niveis) == 0 {
		return fmt.Errorf("%w: lista vazia", ErrNiveisInvalidos)
	}
	ordenados := make([]EscalaNivel, len(niveis))
	copy(ordenados, niveis)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].ValorMinimo < ordenados[j].ValorMinimo
	})

	for i := range ordenados {
		n := &ordenados[i]
		if n.ValorMinimo < 0 {
			return fmt.Errorf("%w: mínimo negativo no escalão %q", ErrNiveisInvalidos, n.Nome)
		}
		if n.Percentagem < 0 || n.Percentagem > 100 {
			return fmt.Errorf("%w: percentagem fora de 0–100 no escalão %q", ErrNiveisInvalidos, n.Nome)
		}
		ultimo := i == len(ordenados)-1
		if n.ValorMaximo == nil {
			if !ultimo {
				return fmt.Errorf("%w: escalão ilimitado %q não é o último", ErrNiveisInvalidos, n.Nome)
			}
			continue
		}
		if *n.ValorMaximo <= n.ValorMinimo {
			return fmt.Errorf("%w: intervalo vazio no escalão %q", ErrNiveisInvalidos, n.Nome)
		}
		if !ultimo && ordenados[i+1].ValorMinimo != *n.ValorMaximo {
			return fmt.Errorf("%w: intervalo entre %q e %q não é contíguo",
				ErrNiveisInvalidos, n.Nome, ordenados[i+1].Nome)
		}
	}
	return nil
}

// ClassificarMotorista resolve o nível de um motorista a partir da
// antiguidade (meses) e da pontuação de cuidado com o veículo (0–100):
// o nível mais alto cujos mínimos ambos se cumprem.
func ClassificarMotorista(niveis []NivelClassificacao, mesesAntiguidade int, pontuacao float64) *NivelClassificacao {
	ordenados := make([]NivelClassificacao, len(niveis))
	copy(ordenados, niveis)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].Nivel > ordenados[j].Nivel
	})
	for i := range ordenados {
		n := &ordenados[i]
		if mesesAntiguidade >= n.MesesMinimos && pontuacao >= n.PontuacaoMinima {
			return n
		}
	}
	return nil
}
