package entity

// PlaylistPath is a published playlist path. Its existence for a given path
// token permits playlist generation under GET /{path}/{format}; the value is
// never used to filter which channels are returned.
type PlaylistPath struct {
	ID   int64
	Path string
}

// PlaylistPathPatch is a partial update of a PlaylistPath.
type PlaylistPathPatch struct {
	Path *string
}

// Apply merges the present fields of the patch into the registration.
func (p *PlaylistPathPatch) Apply(pp *PlaylistPath) {
	if p.Path != nil {
		pp.Path = *p.Path
	}
}
