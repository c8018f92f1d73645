// Copyright 2014 Eric Holmes.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chip8

import "time"

// SleepDelay implements the Delay capability with time.Sleep.
type SleepDelay struct{}

// DelayMicros implements Delay.
func (SleepDelay) DelayMicros(us uint32) error {
	time.Sleep(time.Duration(us) * time.Microsecond)
	return nil
}
