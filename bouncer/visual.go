package bouncer

// Visual is the on-screen representation of a bouncer and the single source of truth for its position
type Visual interface {
	Position() (x, y int64)
	SetPosition(x, y int64)
	Destroy()
}

// Surface creates visuals at their default placement
type Surface interface {
	Create() Visual
}
