// internal/resumosemanal/export.go
package resumosemanal

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/tvdefleet/api-frota/internal/auth"
)

var cabecalhoExport = []string{
	"Motorista", "Semana", "Ano",
	"Ganhos Uber", "Portagens Uber", "Ganhos Bolt",
	"Via Verde", "Combustível", "Carregamento Elétrico",
	"Aluguer Veículo", "Extras", "Valor Líquido", "Status",
}

// Export trata GET /api/relatorios/parceiro/resumo-semanal/export
// Gera o arquivo semanal em xlsx, respeitando o mesmo filtro de status da
// listagem. Montantes arredondados a cêntimos (saída de apresentação).
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	parceiroID, ok := auth.ParceiroDoContexto(r)
	if !ok {
		http.Error(w, "Parceiro não identificado", http.StatusUnauthorized)
		return
	}

	sem, ano, err := periodoDoPedido(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registos, err := h.Repo.ListByPeriodo(parceiroID, sem, ano, r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, "Erro ao buscar resumos", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	folha := fmt.Sprintf("Semana %d-%d", sem, ano)
	idx, err := f.NewSheet(folha)
	if err != nil {
		http.Error(w, "Erro ao gerar folha", http.StatusInternalServerError)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, titulo := range cabecalhoExport {
		cel, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(folha, cel, titulo)
	}

	for linha, reg := range registos {
		valores := []interface{}{
			reg.MotoristaNome, reg.Semana, reg.Ano,
			Arredondar2(reg.GanhosUber), Arredondar2(reg.UberPortagens), Arredondar2(reg.GanhosBolt),
			Arredondar2(reg.ViaVerde), Arredondar2(reg.Combustivel), Arredondar2(reg.CarregamentoEletrico),
			Arredondar2(reg.AluguerVeiculo), Arredondar2(reg.Extras),
			Arredondar2(reg.ValorLiquido), string(reg.Status),
		}
		for col, v := range valores {
			cel, _ := excelize.CoordinatesToCellName(col+1, linha+2)
			_ = f.SetCellValue(folha, cel, v)
		}
	}

	// Linha de totais sobre o subconjunto exportado.
	ag := Agregar(registos)
	totalLinha := len(registos) + 2
	cel, _ := excelize.CoordinatesToCellName(1, totalLinha)
	_ = f.SetCellValue(folha, cel, "TOTAL")
	cel, _ = excelize.CoordinatesToCellName(12, totalLinha)
	_ = f.SetCellValue(folha, cel, Arredondar2(ag.TotalLiquido))

	nome := fmt.Sprintf("resumo-semanal-%d-%d.xlsx", sem, ano)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nome))
	// Depois dos cabeçalhos não há como devolver erro HTTP; o middleware
	// de logging fica com o registo do pedido.
	_ = f.Write(w)
}
