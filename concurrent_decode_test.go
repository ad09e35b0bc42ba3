package xmla_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	xmla "github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000"
	"github.com/eclipse-daanse/org.eclipse.daanse.xmla-sub000/model"
)

func TestDecodeExecuteConcurrent(t *testing.T) {
	docXML := `<Execute xmlns="urn:schemas-microsoft-com:xml-analysis">
  <Command>
    <Alter AllowCreate="true">
      <Object><DatabaseID>Sales</DatabaseID></Object>
      <ObjectDefinition>
        <Database xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
          <ID>Sales</ID>
          <Dimensions>
            <Dimension><ID>Customer</ID><Source xsi:type="DataSourceViewBinding"><DataSourceViewID>dsv</DataSourceViewID></Source></Dimension>
            <Dimension><ID>Product</ID></Dimension>
          </Dimensions>
        </Database>
      </ObjectDefinition>
    </Alter>
  </Command>
</Execute>`

	decoder := xmla.NewDecoder(xmla.NewOptions())

	const goroutines = 8
	const iterations = 25

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				exec, err := decoder.DecodeExecute(strings.NewReader(docXML))
				if err != nil {
					return err
				}
				alter, ok := exec.Command.(model.Alter)
				if !ok {
					return fmt.Errorf("command is %T, want model.Alter", exec.Command)
				}
				db, ok := alter.ObjectDefinition.(model.Database)
				if !ok {
					return fmt.Errorf("object definition is %T, want model.Database", alter.ObjectDefinition)
				}
				if len(db.Dimensions) != 2 {
					return fmt.Errorf("got %d dimensions, want 2", len(db.Dimensions))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent DecodeExecute error: %v", err)
	}
}
