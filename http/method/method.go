package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	PATCH
	OPTION
	DELETE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported methods, sorted by their integer values. Unknown
// is not included, so indexing the List requires subtracting 1 first.
var List = []Method{GET, POST, PUT, PATCH, OPTION, DELETE}

func (m Method) String() string {
	lut := [...]string{
		GET:    "GET",
		POST:   "POST",
		PUT:    "PUT",
		PATCH:  "PATCH",
		OPTION: "OPTION",
		DELETE: "DELETE",
	}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}

// Parse recognizes a method by its token. The match is exact and case-sensitive;
// any token outside the set results in Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		}
	case 6:
		if str == "OPTION" {
			return OPTION
		} else if str == "DELETE" {
			return DELETE
		}
	}

	return Unknown
}
