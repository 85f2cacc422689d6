// Package sprite is the fixed catalog of visual resources. Game entities only
// hold an ID; renderers resolve it to a colour.
package sprite

// ID identifies an entry in the catalog.
type ID uint8

const (
	None ID = iota
	Player
	EnemyGoblin
	EnemyOrc
	EnemyTroll
	Ground
	Splat
	Bullet
	Wall
	count
)

// Sprite describes how a resource is presented.
type Sprite struct {
	Name string
	RGB  uint32 // 0xRRGGBB
}

var catalog = [count]Sprite{
	None:        {Name: "none"},
	Player:      {Name: "player", RGB: 0x3fd0e0},
	EnemyGoblin: {Name: "goblin", RGB: 0xd8c040},
	EnemyOrc:    {Name: "orc", RGB: 0xc050c0},
	EnemyTroll:  {Name: "troll", RGB: 0xe8e8e8},
	Ground:      {Name: "ground", RGB: 0x2f6b2f},
	Splat:       {Name: "splat", RGB: 0xc02020},
	Bullet:      {Name: "bullet", RGB: 0xfff080},
	Wall:        {Name: "wall", RGB: 0x707070},
}

// EnemyVariants lists the IDs a spawner may pick from.
var EnemyVariants = []ID{EnemyGoblin, EnemyOrc, EnemyTroll}

// Lookup returns the catalog entry for id. Unknown IDs resolve to None.
func Lookup(id ID) Sprite {
	if id >= count {
		return catalog[None]
	}
	return catalog[id]
}

// String returns the sprite name.
func (id ID) String() string {
	return Lookup(id).Name
}
