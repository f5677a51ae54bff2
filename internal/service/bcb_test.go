package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resposta do SGS reduzida ao essencial: o XML da série vem escapado dentro
// do elemento de retorno e usa vírgula como separador decimal
const sgsResponseSample = `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <ns1:getUltimoValorXMLResponse xmlns:ns1="https://www3.bcb.gov.br/wssgs/services/FachadaWSSGS">
      <getUltimoValorXMLReturn xsi:type="xsd:string" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">&lt;resposta&gt;&lt;SERIE&gt;&lt;CODIGO&gt;1&lt;/CODIGO&gt;&lt;NOME&gt;Taxa de câmbio - Livre - Dólar americano (venda)&lt;/NOME&gt;&lt;DATA&gt;&lt;DIA&gt;29&lt;/DIA&gt;&lt;MES&gt;8&lt;/MES&gt;&lt;ANO&gt;2026&lt;/ANO&gt;&lt;/DATA&gt;&lt;VALOR&gt;5,4321&lt;/VALOR&gt;&lt;/SERIE&gt;&lt;/resposta&gt;</getUltimoValorXMLReturn>
    </ns1:getUltimoValorXMLResponse>
  </soapenv:Body>
</soapenv:Envelope>`

func TestParseXMLResponse(t *testing.T) {
	valor, err := parseXMLResponse([]byte(sgsResponseSample))
	require.NoError(t, err)
	assert.InDelta(t, 5.4321, valor, 0.0001)
}

func TestParseXMLResponseSemRetorno(t *testing.T) {
	corpo := `<?xml version="1.0"?><soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body/></soapenv:Envelope>`

	_, err := parseXMLResponse([]byte(corpo))
	assert.Error(t, err)
}

func TestParseXMLResponseCorpoInvalido(t *testing.T) {
	_, err := parseXMLResponse([]byte("isto não é XML"))
	assert.Error(t, err)
}

func TestBuildSOAPRequest(t *testing.T) {
	soap := buildSOAPRequest(serieDolarVenda)

	assert.True(t, strings.Contains(soap, "getUltimoValorXML"))
	assert.True(t, strings.Contains(soap, `<in0 xsi:type="xsd:long">1</in0>`))
}
