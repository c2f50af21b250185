package pool

// UserdataSet attaches val to p under key, replacing any prior value.
// The key string is not copied into the pool (callers typically pass a
// package-level constant); UserdataSetN behaves identically.
func (p *Pool) UserdataSet(key string, val any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.userdata == nil {
		p.userdata = make(map[string]any)
	}
	p.userdata[key] = val
}

// UserdataSetN is an alias of UserdataSet kept for parity with APR's
// apr_pool_userdata_setn, which differs from apr_pool_userdata_set only
// in C key-ownership semantics that do not apply to a Go string key.
func (p *Pool) UserdataSetN(key string, val any) { p.UserdataSet(key, val) }

// UserdataGet retrieves a value previously attached with UserdataSet.
func (p *Pool) UserdataGet(key string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.userdata == nil {
		return nil, false
	}
	v, ok := p.userdata[key]
	return v, ok
}
