// internal/pkg/pdf/template.go
package pdf

// receiptTemplate is the HTML layout of the order comprovante
const receiptTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #222; margin: 24px; }
  h1 { font-size: 16px; text-align: center; margin-bottom: 2px; }
  .store { text-align: center; margin-bottom: 14px; }
  .rule { border-top: 1px dashed #888; margin: 10px 0; }
  .section { font-size: 12px; font-weight: bold; margin: 12px 0 6px; }
  table { width: 100%; border-collapse: collapse; }
  th { text-align: left; border-bottom: 1px solid #888; padding: 3px 2px; font-size: 10px; }
  td { padding: 3px 2px; vertical-align: top; }
  td.num, th.num { text-align: right; }
  .custom { color: #555; font-size: 9px; }
  .totals td { padding: 2px; }
  .grand { font-weight: bold; font-size: 13px; }
</style>
</head>
<body>
  <h1>{{.StoreName}}</h1>
  <div class="store">{{.StoreAddress}}<br>{{.StorePhone}}</div>
  <div class="rule"></div>

  <div class="section">COMPROVANTE DE PEDIDO</div>
  <div>ID do Pedido: {{.OrderNumber}}</div>
  <div>Forma de Pagamento: {{.PaymentMethod}}</div>
  <div>Data: {{.PlacedAt}}</div>

  <div class="section">ITENS DO PEDIDO</div>
  <table>
    <tr><th>Qtd</th><th>Descrição</th><th class="num">Valor Unit.</th><th class="num">Total (R$)</th></tr>
    {{range .Items}}
    <tr>
      <td>{{.Quantity}}</td>
      <td>{{.Name}}{{if .Customizations}}<div class="custom">{{.Customizations}}</div>{{end}}</td>
      <td class="num">{{.UnitPrice}}</td>
      <td class="num">{{.LineTotal}}</td>
    </tr>
    {{end}}
  </table>

  <div class="rule"></div>
  <table class="totals">
    <tr><td>Subtotal</td><td class="num">R$ {{.Subtotal}}</td></tr>
    <tr><td>Taxa de Entrega</td><td class="num">R$ {{.DeliveryFee}}</td></tr>
    <tr class="grand"><td>Total</td><td class="num">R$ {{.Total}}</td></tr>
    {{if .CashAmount}}
    <tr><td>Valor Pago</td><td class="num">R$ {{.CashAmount}}</td></tr>
    <tr><td>Troco</td><td class="num">R$ {{.Change}}</td></tr>
    {{end}}
  </table>

  <div class="section">ENDEREÇO DE ENTREGA</div>
  <div>{{.Street}}, {{.Number}}{{if .Complement}} - {{.Complement}}{{end}}</div>
  <div>{{.Neighborhood}}</div>
  <div>WhatsApp: {{.WhatsApp}}</div>
</body>
</html>`
