package inventory

import (
	"encoding/json"
	"sort"
	"strings"
)

// Parse decodes the raw inventory payload. An empty or malformed payload yields
// an empty list; the inventory is informational and never blocks a booking.
func Parse(raw string) []Item {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	return items
}

// RoomCount is the number of items packed for one room.
type RoomCount struct {
	Room  string `json:"room"`
	Count int    `json:"count"`
}

// Summary totals the item quantities and groups them by room, rooms sorted by name.
func Summary(items []Item) (int, []RoomCount) {
	total := 0
	byRoom := make(map[string]int)
	for _, it := range items {
		total += it.Quantity
		room := it.Room
		if room == "" {
			room = "Unassigned"
		}
		byRoom[room] += it.Quantity
	}
	rooms := make([]RoomCount, 0, len(byRoom))
	for room, n := range byRoom {
		rooms = append(rooms, RoomCount{Room: room, Count: n})
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Room < rooms[j].Room })
	return total, rooms
}
