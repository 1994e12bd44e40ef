package entity

// EntityKind discriminates which manager a cross-component signal targets.
type EntityKind string

const (
	KindCategory EntityKind = "category"
	KindProduct  EntityKind = "product"
)

// EditIntent is a transient, single-owner signal referencing exactly one
// category or product targeted for editing. Exactly one of Category or
// Product is set, matching Kind. The producer records it; the consuming
// form must read-and-clear it in one step, never the producer.
type EditIntent struct {
	Kind     EntityKind
	Category *Category
	Product  *Product
}

// DeleteIntent references one entity requested for deletion. Unlike an edit
// intent it stays recorded until the consumer acknowledges it after the
// delete attempt, success or failure, so the signal can never get stuck.
type DeleteIntent struct {
	Kind EntityKind
	ID   int64
}
