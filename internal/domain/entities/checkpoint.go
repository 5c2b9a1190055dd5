package entities

// Checkpoint holds a copy of the mutable state of a user, optionally one of
// their requests, and a set of collection points. Restore writes every copied
// value back onto the live objects.
type Checkpoint struct {
	user      *User
	userState User

	request  *DisposalRequest
	reqState DisposalRequest
	items    []LineItem

	points map[*CollectionPoint]CollectionPoint
}

// NewCheckpoint captures user, req and points; any of them may be nil. The
// owner of req and the point it already holds are captured as well.
func NewCheckpoint(user *User, req *DisposalRequest, points ...*CollectionPoint) Checkpoint {
	c := Checkpoint{points: make(map[*CollectionPoint]CollectionPoint, len(points)+1)}
	if req != nil {
		if user == nil {
			user = req.user
		}
		c.request = req
		c.reqState = *req
		c.reqState.items = append([]*LineItem(nil), req.items...)
		c.reqState.history = req.History()
		c.items = make([]LineItem, len(req.items))
		for i, it := range req.items {
			c.items[i] = *it
		}
		points = append(points, req.point)
	}
	if user != nil {
		c.user = user
		c.userState = *user
		c.userState.notifications = user.Notifications()
	}
	for _, p := range points {
		if p != nil {
			c.points[p] = *p
		}
	}
	return c
}

// Restore puts every captured value back. It can be called more than once.
func (c Checkpoint) Restore() {
	if c.request != nil {
		for i, it := range c.reqState.items {
			*it = c.items[i]
		}
		*c.request = c.reqState
		c.request.items = append([]*LineItem(nil), c.reqState.items...)
		c.request.history = append([]State(nil), c.reqState.history...)
	}
	if c.user != nil {
		*c.user = c.userState
		c.user.notifications = append([]string(nil), c.userState.notifications...)
	}
	for p, saved := range c.points {
		*p = saved
	}
}
