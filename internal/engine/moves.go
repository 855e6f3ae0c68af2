package engine

// Move categories.
const (
	CategoryPhysical = "Physical"
	CategoryStatus   = "Status"
)

type Move struct {
	Name     string
	Type     string
	Power    int
	Accuracy int
	Category string
}

// moveData is the MVP move pool: one damaging move, one debuff.
var moveData = map[string]Move{
	"tackle": {Name: "Tackle", Type: "Normal", Power: 40, Accuracy: 100, Category: CategoryPhysical},
	"growl":  {Name: "Growl", Type: "Normal", Power: 0, Accuracy: 100, Category: CategoryStatus},
}

// MoveByKey looks up a move by its wire key.
func MoveByKey(key string) (Move, bool) {
	m, ok := moveData[key]
	return m, ok
}
