package rng

// laneParams is the recurrence and tempering of one Mersenne-Twister lane.
type laneParams struct {
	n, m  int
	upper uint32
	lower uint32
	a     uint32

	u, s, t, l uint
	b, c       uint32
}

// lane is one independent MT substream. A lane is only ever touched by the
// goroutine running its kernel slice.
type lane struct {
	p *laneParams
	x []uint32
	i int
}

func newLane(p *laneParams) *lane {
	return &lane{p: p, x: make([]uint32, p.n), i: p.n}
}

func (ln *lane) initGenrand(s uint32) {
	x := ln.x
	x[0] = s
	for i := 1; i < len(x); i++ {
		x[i] = 1812433253*(x[i-1]^(x[i-1]>>30)) + uint32(i)
	}
	ln.i = len(x)
}

// seed initialises the lane from key with the init_by_array schedule.
func (ln *lane) seed(key []uint32) {
	ln.initGenrand(19650218)
	x := ln.x
	n := len(x)

	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		x[i] = (x[i] ^ ((x[i-1] ^ (x[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			x[0] = x[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		x[i] = (x[i] ^ ((x[i-1] ^ (x[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			x[0] = x[n-1]
			i = 1
		}
	}
	x[0] = 0x80000000
	ln.i = n
}

func (ln *lane) twist() {
	p := ln.p
	x := ln.x
	n, m := p.n, p.m

	var k int
	for k = 0; k < n-m; k++ {
		y := (x[k] & p.upper) | (x[k+1] & p.lower)
		x[k] = x[k+m] ^ (y >> 1) ^ (-(y & 1) & p.a)
	}
	for ; k < n-1; k++ {
		y := (x[k] & p.upper) | (x[k+1] & p.lower)
		x[k] = x[k+m-n] ^ (y >> 1) ^ (-(y & 1) & p.a)
	}
	y := (x[n-1] & p.upper) | (x[0] & p.lower)
	x[n-1] = x[m-1] ^ (y >> 1) ^ (-(y & 1) & p.a)
	ln.i = 0
}

func (ln *lane) next() uint32 {
	if ln.i >= ln.p.n {
		ln.twist()
	}
	p := ln.p
	y := ln.x[ln.i]
	ln.i++

	y ^= y >> p.u
	y ^= (y << p.s) & p.b
	y ^= (y << p.t) & p.c
	y ^= y >> p.l
	return y
}

// fill writes uniform values in [0, 1) built from the top 24 bits of each
// output word, so every value is exactly representable and below 1.
func (ln *lane) fill(out []float32) {
	for i := range out {
		out[i] = float32(ln.next()>>8) * (1.0 / 16777216.0)
	}
}
