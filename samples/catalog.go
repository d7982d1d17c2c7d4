package samples

import "sort"

// Built-in item ids.
const (
	ItemGoldCoin     = "gold_coin"
	ItemCheeseWheel  = "cheese_wheel"
	ItemHealthPotion = "health_potion"
	ItemCopperOre    = "copper_ore"
	ItemIronSword    = "iron_sword"
	ItemLanternOil   = "lantern_oil"
)

var builtinCatalog = buildCatalog()

func buildCatalog() map[string]*Item {
	defs := []*Item{
		mustDefine(ItemParams{
			ID:          ItemGoldCoin,
			Name:        "Gold Coin",
			Description: "Minted currency. Stacks high, weighs nothing.",
			MaxQuantity: 250,
			Tags:        []string{"currency"},
		}),
		mustDefine(ItemParams{
			ID:          ItemCheeseWheel,
			Name:        "Cheese Wheel",
			Description: "A hearty wheel of cheese. Keeps surprisingly well.",
			MaxQuantity: 100,
			Tags:        []string{"food"},
		}),
		mustDefine(ItemParams{
			ID:          ItemHealthPotion,
			Name:        "Health Potion",
			Description: "Restores a modest amount of health when drunk.",
			MaxQuantity: 20,
			Tags:        []string{"consumable"},
		}),
		mustDefine(ItemParams{
			ID:          ItemCopperOre,
			Name:        "Copper Ore",
			Description: "Raw ore straight from the vein.",
			MaxQuantity: 100,
			Tags:        []string{"material"},
		}),
		mustDefine(ItemParams{
			ID:          ItemIronSword,
			Name:        "Iron Sword",
			Description: "A dependable blade. One per slot.",
			MaxQuantity: 1,
			Tags:        []string{"weapon"},
		}),
		mustDefine(ItemParams{
			ID:          ItemLanternOil,
			Name:        "Lantern Oil",
			Description: "Fuel for a lantern. Handle away from open flame.",
			MaxQuantity: 12,
			Tags:        []string{"consumable", "fuel"},
		}),
	}

	catalog := make(map[string]*Item, len(defs))
	for _, def := range defs {
		catalog[def.ID()] = def
	}
	return catalog
}

func mustDefine(params ItemParams) *Item {
	item, err := NewItem(params)
	if err != nil {
		panic(err)
	}
	return item
}

// ItemByID looks up a built-in item definition.
func ItemByID(id string) (*Item, bool) {
	item, ok := builtinCatalog[id]
	return item, ok
}

// Items returns the built-in definitions sorted by id.
func Items() []*Item {
	items := make([]*Item, 0, len(builtinCatalog))
	for _, item := range builtinCatalog {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID() < items[b].ID() })
	return items
}
