// internal/refine/export.go
package refine

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// csvHeaderPrefix is the fixed column prefix; the union of spec keys
// present in the exported set follows it, first-seen order.
var csvHeaderPrefix = []string{"Brand", "Model", "Price", "Currency", "Supplier", "URL", "Condition"}

// ToCSV serializes products into delimited text. Every field is wrapped in
// quotes with embedded quotes doubled, and every row carries exactly as
// many fields as the header; a product missing a spec key contributes an
// empty string. An empty set yields nil, not an error.
func ToCSV(products []models.Product) []byte {
	if len(products) == 0 {
		return nil
	}

	specKeys := specKeyUnion(products)
	header := append(append([]string{}, csvHeaderPrefix...), specKeys...)

	var buf bytes.Buffer
	writeCSVRow(&buf, header)

	for _, p := range products {
		row := []string{
			p.Brand,
			p.Model,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			p.Currency,
			p.Supplier,
			p.ProductURL,
			p.Condition,
		}
		for _, key := range specKeys {
			row = append(row, p.Specs.Get(key))
		}
		writeCSVRow(&buf, row)
	}

	return buf.Bytes()
}

// specKeyUnion collects every spec key present across the set in stable
// first-seen order.
func specKeyUnion(products []models.Product) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, p := range products {
		for _, key := range p.Specs.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

var printTemplate = template.Must(template.New("print").Funcs(template.FuncMap{
	"displayPrice": displayPrice,
}).Parse(`<html><head><title>Equipment Export</title>
<style>body{font-family:sans-serif;margin:2em} table{border-collapse:collapse;width:100%} th,td{border:1px solid #ddd;padding:8px;text-align:left} th{background-color:#f2f2f2} tr:nth-child(even){background-color:#f9f9f9} img{max-width:80px;max-height:80px;vertical-align:middle} h1{font-size:1.5em}</style>
</head><body>
<h1>Search Results ({{len .Products}} items)</h1>
<table>
<tr><th>Image</th><th>Brand &amp; Model</th><th>Price</th><th>Supplier</th></tr>
{{range .Products}}<tr>
<td><img src="{{.ImageURL}}" alt="{{.Model}}"></td>
<td><b>{{.Brand}}</b><br>{{.Model}}</td>
<td>{{displayPrice .}}</td>
<td>{{.Supplier}}</td>
</tr>
{{end}}</table>
<script>window.onload = function() { window.print(); window.close(); }</script>
</body></html>
`))

// ToPrintableHTML renders products as a self-contained printable document
// that triggers printing on load. Layout is presentation detail only; no
// pagination is attempted. An empty set yields nil.
func ToPrintableHTML(products []models.Product) []byte {
	if len(products) == 0 {
		return nil
	}

	var buf bytes.Buffer
	err := printTemplate.Execute(&buf, struct {
		Products []models.Product
	}{Products: products})
	if err != nil {
		return nil
	}
	return buf.Bytes()
}

// displayPrice formats a price for the printable table; the unknown-price
// sentinel renders as N/A.
func displayPrice(p models.Product) string {
	if p.Price <= 0 {
		return "N/A"
	}
	printer := message.NewPrinter(language.English)
	return printer.Sprintf("%v %s", number.Decimal(p.Price), p.Currency)
}
