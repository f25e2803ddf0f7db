package gail

import "time"

func (c Client) WithNow(now func() time.Time) Client {
	c.now = now
	return c
}
