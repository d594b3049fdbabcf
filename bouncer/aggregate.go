package bouncer

// Aggregates divide the raw Q32.32 sum by an integer count, truncating toward zero

// AverageVelocityX averages x velocity over all bouncers, distinguished included
// A registry holding only the distinguished bouncer averages to zero, like the position queries
func (r *Registry) AverageVelocityX() int64 {
	return r.averageVelocity(func(b *Bouncer) int64 { return b.kinetic.VelX })
}

// AverageVelocityY averages y velocity over all bouncers, distinguished included
func (r *Registry) AverageVelocityY() int64 {
	return r.averageVelocity(func(b *Bouncer) int64 { return b.kinetic.VelY })
}

// AveragePositionX averages x position over non-distinguished bouncers, zero when there are none
func (r *Registry) AveragePositionX() int64 {
	x, _ := r.Centroid()
	return x
}

// AveragePositionY averages y position over non-distinguished bouncers, zero when there are none
func (r *Registry) AveragePositionY() int64 {
	_, y := r.Centroid()
	return y
}

// Centroid returns the mean position of the non-distinguished bouncers
func (r *Registry) Centroid() (x, y int64) {
	others := r.Others()
	if len(others) == 0 {
		return 0, 0
	}
	var sumX, sumY int64
	for _, b := range others {
		bx, by := b.Position()
		sumX += bx
		sumY += by
	}
	n := int64(len(others))
	return sumX / n, sumY / n
}

func (r *Registry) averageVelocity(component func(*Bouncer) int64) int64 {
	n := r.Len()
	if n <= 1 {
		return 0
	}
	sum := component(r.distinguished)
	for _, b := range r.Others() {
		sum += component(b)
	}
	return sum / int64(n)
}
