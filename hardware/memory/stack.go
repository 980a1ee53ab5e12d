// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package memory

import "github.com/kehitt/gopher8/curated"

// Sentinal errors returned by the Stack type.
const (
	StackOverflow  = "stack: overflow (%d frames)"
	StackUnderflow = "stack: underflow"
)

// StackSize is the maximum subroutine call depth.
const StackSize = 16

// Stack is the subroutine call stack. The original machine kept it inside the
// interpreter's reserved memory, here it lives in its own type.
type Stack struct {
	frames [StackSize]uint16
	sp     int
}

// Push an address onto the stack.
func (stk *Stack) Push(address uint16) error {
	if stk.sp >= StackSize {
		return curated.Errorf(StackOverflow, StackSize)
	}
	stk.frames[stk.sp] = address
	stk.sp++
	return nil
}

// Pop an address from the stack.
func (stk *Stack) Pop() (uint16, error) {
	if stk.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.sp--
	return stk.frames[stk.sp], nil
}

// Depth returns the number of frames currently on the stack.
func (stk *Stack) Depth() int {
	return stk.sp
}

// Frames returns a copy of the active portion of the stack, bottom first.
func (stk *Stack) Frames() []uint16 {
	cp := make([]uint16, stk.sp)
	copy(cp, stk.frames[:stk.sp])
	return cp
}

// Reset the stack to its initial state.
func (stk *Stack) Reset() {
	stk.sp = 0
}
