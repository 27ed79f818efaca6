// README: Packing and moving tips shown on the tips page.
package tips

type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
