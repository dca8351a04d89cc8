package domain

import "sort"

// Catalog is an immutable snapshot of the venue's activities, resources and
// resource links with fast lookups. Both engine algorithms consume it
// instead of raw slices so that resource→activity→area resolution is done
// one way everywhere.
type Catalog struct {
	activities      map[int64]*Activity
	resources       map[int64]*Resource
	resourcesByArea map[int64][]*Resource
	links           ResourceLinks
}

// NewCatalog builds a catalog snapshot from entity lists.
func NewCatalog(activities []*Activity, resources []*Resource, links ResourceLinks) *Catalog {
	c := &Catalog{
		activities:      make(map[int64]*Activity, len(activities)),
		resources:       make(map[int64]*Resource, len(resources)),
		resourcesByArea: make(map[int64][]*Resource),
		links:           links,
	}

	for _, a := range activities {
		c.activities[a.ID] = a
	}
	for _, r := range resources {
		c.resources[r.ID] = r
		if a, ok := c.activities[r.ActivityID]; ok {
			c.resourcesByArea[a.AreaID] = append(c.resourcesByArea[a.AreaID], r)
		}
	}
	for _, rs := range c.resourcesByArea {
		sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	}

	return c
}

// Activity returns the activity by id.
func (c *Catalog) Activity(id int64) (*Activity, bool) {
	a, ok := c.activities[id]
	return a, ok
}

// Resource returns the resource by id.
func (c *Catalog) Resource(id int64) (*Resource, bool) {
	r, ok := c.resources[id]
	return r, ok
}

// ResourcesInArea returns the area's resources sorted by id.
func (c *Catalog) ResourcesInArea(areaID int64) []*Resource {
	return c.resourcesByArea[areaID]
}

// AreaOf resolves a resource to its area through the owning activity.
func (c *Catalog) AreaOf(resourceID int64) (int64, bool) {
	r, ok := c.resources[resourceID]
	if !ok {
		return 0, false
	}
	a, ok := c.activities[r.ActivityID]
	if !ok {
		return 0, false
	}
	return a.AreaID, true
}

// StaffUnitOf resolves a resource to its staff unit.
func (c *Catalog) StaffUnitOf(resourceID int64) StaffUnitID {
	return c.links.StaffUnitOf(resourceID)
}

// Links returns the resource link groups of the snapshot.
func (c *Catalog) Links() ResourceLinks {
	return c.links
}
