// Package xmlreport serializa el reporte de inventario como documento XML.
package xmlreport

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Inventario-tracker/internal/application/dto"
	"github.com/jhoicas/Inventario-tracker/internal/domain/entity"
)

// EtreeReportWriter implementa inventory.ReportRenderer con beevik/etree.
//
//	<InventoryReport title=".." generatedAt=".." threshold="5">
//	  <Products count="5"><Product id="1" name=".." price="999.99" stock="15" value=".."/>…</Products>
//	  <LowStock count="1">…</LowStock>
//	  <Totals totalValue=".." averagePrice=".."/>
//	</InventoryReport>
type EtreeReportWriter struct{}

// NewEtreeReportWriter construye el writer.
func NewEtreeReportWriter() *EtreeReportWriter { return &EtreeReportWriter{} }

// ContentType del documento generado.
func (w *EtreeReportWriter) ContentType() string { return "application/xml" }

// Extension del archivo generado.
func (w *EtreeReportWriter) Extension() string { return "xml" }

// Render construye el documento y lo devuelve indentado.
func (w *EtreeReportWriter) Render(_ context.Context, report *dto.InventoryReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("xmlreport: reporte nil")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("InventoryReport")
	root.CreateAttr("title", report.Title)
	root.CreateAttr("generatedAt", report.GeneratedAt.UTC().Format(time.RFC3339))
	root.CreateAttr("threshold", strconv.Itoa(report.Threshold))

	writeProducts(root.CreateElement("Products"), report.Products)
	writeProducts(root.CreateElement("LowStock"), report.LowStock)

	totals := root.CreateElement("Totals")
	totals.CreateAttr("totalValue", report.TotalValue.StringFixed(2))
	totals.CreateAttr("averagePrice", report.AveragePrice.StringFixed(2))

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlreport: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func writeProducts(parent *etree.Element, products []entity.Product) {
	parent.CreateAttr("count", strconv.Itoa(len(products)))
	for _, p := range products {
		el := parent.CreateElement("Product")
		el.CreateAttr("id", strconv.Itoa(p.ID))
		el.CreateAttr("name", p.Name)
		el.CreateAttr("price", p.Price.StringFixed(2))
		el.CreateAttr("stock", strconv.Itoa(p.StockQuantity))
		el.CreateAttr("value", p.Value().StringFixed(2))
	}
}
