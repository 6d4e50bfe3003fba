package types

// EntityID identifies enemies, projectiles and other runtime entities. 0 means "none".
type EntityID int
