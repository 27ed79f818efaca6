// README: Inventory items built client-side and submitted as a JSON list.
package inventory

// Item is one line of a visitor's moving inventory.
type Item struct {
	Name     string `json:"name"`
	Room     string `json:"room,omitempty"`
	Quantity int    `json:"quantity"`
	Fragile  bool   `json:"fragile,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
