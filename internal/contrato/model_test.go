package contrato

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidarReparticaoDaComissao(t *testing.T) {
	tests := []struct {
		name      string
		motorista float64
		parceiro  float64
		querErr   error
	}{
		{name: "soma exata passa", motorista: 60, parceiro: 40},
		{name: "meio a meio passa", motorista: 50, parceiro: 50},
		{name: "99 é rejeitado", motorista: 60, parceiro: 39, querErr: ErrReparticaoInvalida},
		{name: "101 é rejeitado", motorista: 60, parceiro: 41, querErr: ErrReparticaoInvalida},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := ContratoTemplate{
				Tipo:                 TipoComissao,
				Nome:                 "Comissão padrão",
				PercentagemMotorista: tt.motorista,
				PercentagemParceiro:  tt.parceiro,
			}
			err := tmpl.Validar()
			if tt.querErr != nil {
				require.ErrorIs(t, err, tt.querErr)
			} else {
				require.NoError(t, err)
			}

			c := Contrato{
				Tipo:                 TipoComissao,
				PercentagemMotorista: tt.motorista,
				PercentagemParceiro:  tt.parceiro,
			}
			err = c.Validar()
			if tt.querErr != nil {
				require.ErrorIs(t, err, tt.querErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidarTipo(t *testing.T) {
	tmpl := ContratoTemplate{Tipo: "leasing", Nome: "X"}
	require.ErrorIs(t, tmpl.Validar(), ErrTipoDesconhecido)

	// tipos sem repartição não exigem percentagens
	for _, tipo := range []TipoContrato{TipoAluguerFixo, TipoEpocaSazonal, TipoCompraVeiculo} {
		tmpl := ContratoTemplate{Tipo: tipo, Nome: "X"}
		require.NoError(t, tmpl.Validar())
	}
}
