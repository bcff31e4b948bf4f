package signal

import "fmt"

// Validate checks the dataset invariant: within each list, every record id
// is unique. Empty lists are fine. The engine itself never calls this --
// adapters validate before handing a dataset over.
func (d *UnifiedDataset) Validate() error {
	if err := uniqueIDs("emails", len(d.Emails), func(i int) string { return d.Emails[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("incidents", len(d.Incidents), func(i int) string { return d.Incidents[i].ID }); err != nil {
		return err
	}
	if err := uniqueIDs("calendar_events", len(d.Events), func(i int) string { return d.Events[i].ID }); err != nil {
		return err
	}
	return uniqueIDs("tickets", len(d.Tickets), func(i int) string { return d.Tickets[i].ID })
}

func uniqueIDs(list string, n int, id func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if seen[v] {
			return fmt.Errorf("duplicate id %q in %s", v, list)
		}
		seen[v] = true
	}
	return nil
}
