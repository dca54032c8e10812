package shell

import (
	"text/tabwriter"

	"storefront/internal/controller/admin"
	"storefront/internal/entities"
)

const helpText = `Commands:
  help                       show this help
  view <catalog|admin>       switch view (also: /, /admin)
  quit                       leave the shell

Catalog:
  products                   reload the menu
  add <name...> <price>      add a product
  order <productID>          place an order
  status [orderID]           check an order status
  delete <productID>         delete a product

Admin:
  orders                     reload all orders
  draft <orderID> <status>   pick pending, completed or cancelled
  commit <orderID>           send the picked status
  delete <orderID>           delete an order
`

func (s *Shell) printHelp() {
	s.term.Printf("%s", helpText)
}

func (s *Shell) render() {
	switch s.active {
	case ViewCatalog:
		s.renderCatalog()
	case ViewAdmin:
		s.renderAdmin()
	}
}

func (s *Shell) renderCatalog() {
	products := s.catalog.Products()

	s.term.Printf("Menu\n")
	if len(products) == 0 {
		s.term.Printf("  (empty)\n")
	} else {
		tw := tabwriter.NewWriter(s.term, 0, 4, 2, ' ', 0)
		_, _ = tw.Write([]byte("  ID\tNAME\tPRICE\n"))
		for _, p := range products {
			_, _ = tw.Write([]byte("  " + itoa(p.ID) + "\t" + p.Name + "\t" + p.Price.StringFixed(2) + "\n"))
		}
		_ = tw.Flush()
	}

	lookup := s.catalog.Lookup()
	if lookup.OrderID != "" {
		s.term.Printf("Order %s: %s\n", lookup.OrderID, lookupStatus(lookup))
	}
}

func lookupStatus(lookup entities.OrderLookup) string {
	switch {
	case lookup.Status == nil:
		return "not checked yet"
	case *lookup.Status == entities.LookupNotFound:
		return entities.LookupNotFound
	default:
		return "Status: " + *lookup.Status
	}
}

func (s *Shell) renderAdmin() {
	rows := s.admin.Rows()

	s.term.Printf("Manage Orders\n")
	if len(rows) == 0 {
		s.term.Printf("  (no orders)\n")
		return
	}

	tw := tabwriter.NewWriter(s.term, 0, 4, 2, ' ', 0)
	_, _ = tw.Write([]byte("  ORDER\tPRODUCT\tSTATUS\tDRAFT\n"))
	for _, row := range rows {
		draft := row.Draft.String()
		if row.State == admin.Drafted {
			draft += " *"
		}
		_, _ = tw.Write([]byte("  " + itoa(row.Order.ID) + "\t" + itoa(row.Order.ProductID) + "\t" +
			row.Order.Status.String() + "\t" + draft + "\n"))
	}
	_ = tw.Flush()
}
