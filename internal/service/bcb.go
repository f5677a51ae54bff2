package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// Série 1 do SGS: taxa de câmbio livre, dólar americano (venda)
const serieDolarVenda = 1

const bcbEndpoint = "https://www3.bcb.gov.br/wssgs/services/FachadaWSSGS"

type BCBClient struct {
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewBCBClient cria um cliente para o webservice SGS do Banco Central
func NewBCBClient(logger *logrus.Logger) *BCBClient {
	return &BCBClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// buildSOAPRequest monta a chamada getUltimoValorXML para a série informada
func buildSOAPRequest(serie int64) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
        <soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"
                          xmlns:xsd="http://www.w3.org/2001/XMLSchema"
                          xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
            <soapenv:Body>
                <getUltimoValorXML soapenv:encodingStyle="http://schemas.xmlsoap.org/soap/encoding/">
                    <in0 xsi:type="xsd:long">%d</in0>
                </getUltimoValorXML>
            </soapenv:Body>
        </soapenv:Envelope>`, serie)
}

// sendRequest envia a chamada SOAP ao Banco Central e devolve o corpo bruto
func (c *BCBClient) sendRequest(soapRequest string) ([]byte, error) {
	req, err := http.NewRequest(
		"POST",
		bcbEndpoint,
		bytes.NewBuffer([]byte(soapRequest)),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição HTTP: %v", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %v", err)
	}

	return rawBody, nil
}

// parseXMLResponse extrai o valor da série do envelope SOAP. O retorno do
// SGS vem como um documento XML escapado dentro do elemento de retorno, com
// vírgula como separador decimal.
func parseXMLResponse(rawBody []byte) (float64, error) {
	envelope := etree.NewDocument()
	if err := envelope.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("erro ao interpretar o XML: %v", err)
	}

	returnElement := envelope.FindElement("//getUltimoValorXMLReturn")
	if returnElement == nil {
		return 0, errors.New("resposta do SGS sem o elemento de retorno")
	}

	serie := etree.NewDocument()
	if err := serie.ReadFromString(returnElement.Text()); err != nil {
		return 0, fmt.Errorf("erro ao interpretar o XML da série: %v", err)
	}

	valorElement := serie.FindElement("//VALOR")
	if valorElement == nil {
		return 0, errors.New("elemento <VALOR> ausente na resposta do SGS")
	}

	valorStr := strings.Replace(strings.TrimSpace(valorElement.Text()), ",", ".", 1)

	valor, err := strconv.ParseFloat(valorStr, 64)
	if err != nil {
		return 0, fmt.Errorf("erro ao converter o valor da série: %v", err)
	}

	return valor, nil
}

// GetDollarRate obtém a última cotação do dólar comercial (venda) no SGS
func (c *BCBClient) GetDollarRate() (float64, error) {
	c.logger.Info("Montando a chamada SOAP ao SGS do Banco Central...")
	soapRequest := buildSOAPRequest(serieDolarVenda)

	c.logger.Info("Consultando o Banco Central...")
	rawBody, err := c.sendRequest(soapRequest)
	if err != nil {
		c.logger.WithError(err).Error("Erro ao consultar o Banco Central")
		return 0, err
	}
	c.logger.Debug("Resposta do Banco Central recebida")

	cotacao, err := parseXMLResponse(rawBody)
	if err != nil {
		c.logger.WithError(err).Error("Erro ao interpretar a resposta do Banco Central")
		return 0, err
	}

	c.logger.WithField("cotacao", cotacao).Info("Cotação do dólar obtida com sucesso")
	return cotacao, nil
}
