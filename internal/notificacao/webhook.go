package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

func enviar(payload map[string]interface{}) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("Webhook respondeu %s", resp.Status)
	}
}

// EnviarWebhookLiquidacao avisa o sistema externo configurado (WEBHOOK_URL)
// de que um acerto semanal foi liquidado. Falhas são registadas e engolidas;
// a liquidação nunca depende do webhook.
func EnviarWebhookLiquidacao(parceiroID, motoristaID uint, semana, ano int, valor float64) {
	enviar(map[string]interface{}{
		"evento":      "resumo_liquidado",
		"parceiroId":  parceiroID,
		"motoristaId": motoristaID,
		"semana":      semana,
		"ano":         ano,
		"valor":       valor,
	})
}

// EnviarWebhookAlerta envia um alerta genérico de parceiro (ex.: líquido
// negativo acumulado) para o mesmo endpoint.
func EnviarWebhookAlerta(parceiroID uint, mensagem string) {
	enviar(map[string]interface{}{
		"evento":     "alerta_parceiro",
		"parceiroId": parceiroID,
		"mensagem":   mensagem,
	})
}
