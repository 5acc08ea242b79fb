package source

import (
	"sort"

	"github.com/maruel/natural"
)

// Sort method identifiers, as stored in the config file
const (
	SortNatural    = 0 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 1 // Simple string sort (lexicographical)
	SortEntryOrder = 2 // Filesystem order (no sort)
)

// SortStrategy orders discovered locations before IDs are assigned
type SortStrategy interface {
	// Sort returns a new sorted slice without modifying the original
	Sort(locations []Location) []Location
	// Name returns the human-readable name of the strategy
	Name() string
	// ID returns the numeric identifier for config storage
	ID() int
}

// NaturalSortStrategy implements natural sorting using maruel/natural
type NaturalSortStrategy struct{}

func (s *NaturalSortStrategy) Sort(locations []Location) []Location {
	result := cloneLocations(locations)
	sort.SliceStable(result, func(i, j int) bool {
		return natural.Less(result[i].String(), result[j].String())
	})
	return result
}

func (s *NaturalSortStrategy) Name() string {
	return "Natural"
}

func (s *NaturalSortStrategy) ID() int {
	return SortNatural
}

// SimpleSortStrategy implements lexicographical sorting
type SimpleSortStrategy struct{}

func (s *SimpleSortStrategy) Sort(locations []Location) []Location {
	result := cloneLocations(locations)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

func (s *SimpleSortStrategy) Name() string {
	return "Simple"
}

func (s *SimpleSortStrategy) ID() int {
	return SortSimple
}

// EntryOrderSortStrategy preserves enumeration order, which depends on the filesystem
type EntryOrderSortStrategy struct{}

func (s *EntryOrderSortStrategy) Sort(locations []Location) []Location {
	return cloneLocations(locations)
}

func (s *EntryOrderSortStrategy) Name() string {
	return "Entry Order"
}

func (s *EntryOrderSortStrategy) ID() int {
	return SortEntryOrder
}

func cloneLocations(locations []Location) []Location {
	result := make([]Location, len(locations))
	copy(result, locations)
	return result
}

// GetSortStrategy returns the strategy for a sort method ID, defaulting to natural order
func GetSortStrategy(sortMethod int) SortStrategy {
	switch sortMethod {
	case SortNatural:
		return &NaturalSortStrategy{}
	case SortSimple:
		return &SimpleSortStrategy{}
	case SortEntryOrder:
		return &EntryOrderSortStrategy{}
	default:
		return &NaturalSortStrategy{}
	}
}

// NextSortStrategy returns the strategy after s in cycling order
func NextSortStrategy(s SortStrategy) SortStrategy {
	if s == nil {
		return GetSortStrategy(SortNatural)
	}
	return GetSortStrategy((s.ID() + 1) % len(GetAllSortStrategies()))
}

// GetAllSortStrategies returns all available sort strategies
func GetAllSortStrategies() []SortStrategy {
	return []SortStrategy{
		&NaturalSortStrategy{},
		&SimpleSortStrategy{},
		&EntryOrderSortStrategy{},
	}
}
