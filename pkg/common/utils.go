package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func let(ok bool, yes, no int) int {
	if ok {
		return yes
	}
	return no
}

// Sign returns 1 when player 1 is to move, -1 otherwise.
func Sign(player1 bool) int {
	return let(player1, 1, -1)
}
