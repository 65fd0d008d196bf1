package sim

// AABB is an axis-aligned box on the ground plane (x right, z forward).
type AABB struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// BoxAt returns the box centred on (x, z) with the given half extents.
func BoxAt(x, z, halfW, halfL float64) AABB {
	return AABB{MinX: x - halfW, MaxX: x + halfW, MinZ: z - halfL, MaxZ: z + halfL}
}

func (b AABB) Center() (float64, float64) {
	return (b.MinX + b.MaxX) * 0.5, (b.MinZ + b.MaxZ) * 0.5
}

func (b AABB) HalfSize() (float64, float64) {
	return (b.MaxX - b.MinX) * 0.5, (b.MaxZ - b.MinZ) * 0.5
}

// Intersects is inclusive: boxes that only touch along an edge overlap.
func (b AABB) Intersects(o AABB) bool {
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinZ <= o.MaxZ && b.MaxZ >= o.MinZ
}

func (b AABB) Contains(x, z float64) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

func (b AABB) Translate(dx, dz float64) AABB {
	return AABB{MinX: b.MinX + dx, MaxX: b.MaxX + dx, MinZ: b.MinZ + dz, MaxZ: b.MaxZ + dz}
}

// Penetration returns the minimum translation that separates b from o and the
// overlap depth along that axis. The axis with the smaller overlap wins; ties go
// to X. Boxes that do not intersect return zeros.
func (b AABB) Penetration(o AABB) (dx, dz, depth float64) {
	if !b.Intersects(o) {
		return 0, 0, 0
	}
	pushPosX := o.MaxX - b.MinX // moving b toward +X
	pushNegX := b.MaxX - o.MinX // moving b toward -X
	pushPosZ := o.MaxZ - b.MinZ
	pushNegZ := b.MaxZ - o.MinZ

	overlapX := min(pushPosX, pushNegX)
	overlapZ := min(pushPosZ, pushNegZ)

	if overlapX <= overlapZ {
		if pushPosX < pushNegX {
			return pushPosX, 0, overlapX
		}
		return -pushNegX, 0, overlapX
	}
	if pushPosZ < pushNegZ {
		return 0, pushPosZ, overlapZ
	}
	return 0, -pushNegZ, overlapZ
}
