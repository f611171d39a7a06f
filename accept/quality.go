package accept

// parseQuality parses a qvalue into thousandths:
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func parseQuality(str string) (uint16, bool) {
	if len(str) == 0 || len(str) > len("0.000") {
		return 0, false
	}

	var quality uint16

	switch str[0] {
	case '0':
	case '1':
		quality = 1000
	default:
		return 0, false
	}

	if len(str) == 1 {
		return quality, true
	}

	if str[1] != '.' {
		return 0, false
	}

	weight := uint16(100)
	for i := 2; i < len(str); i++ {
		c := str[i]
		if c < '0' || c > '9' {
			return 0, false
		}

		quality += uint16(c-'0') * weight
		weight /= 10
	}

	return quality, quality <= 1000
}
