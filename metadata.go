package ustar

// TypeFlag identifies the kind of an archive entry.
type TypeFlag byte

const (
	// TypeNormalFile is a regular file.
	TypeNormalFile TypeFlag = '0'

	// TypeHardLink is a hard link to a file already in the archive.
	TypeHardLink TypeFlag = '1'

	// TypeSymbolicLink is a symbolic link.
	TypeSymbolicLink TypeFlag = '2'
)

func (t TypeFlag) String() string {
	switch t {
	case TypeNormalFile:
		return "normal file"
	case TypeHardLink:
		return "hard link"
	case TypeSymbolicLink:
		return "symbolic link"
	default:
		return "unknown"
	}
}

// Permissions is one read/write/execute permission class.
type Permissions struct {
	Read    bool
	Write   bool
	Execute bool
}

// digit renders the class as its ASCII octal digit (4R + 2W + 1X).
func (p Permissions) digit() byte {
	var v byte
	if p.Read {
		v += 4
	}
	if p.Write {
		v += 2
	}
	if p.Execute {
		v += 1
	}
	return '0' + v
}

// FileMode holds an entry's permission classes and special bits.
//
// The special bits (SetUID, SetGID, Sticky) are carried in the data model
// but do not reach the wire encoding: the header's mode field encodes only
// the three permission classes.
type FileMode struct {
	Owner Permissions
	Group Permissions
	Other Permissions

	SetUID bool
	SetGID bool
	Sticky bool
}

// FileModeFromUnix builds a FileMode from Unix permission bits such as
// 0o644, including the setuid/setgid/sticky bits.
func FileModeFromUnix(perm uint32) FileMode {
	class := func(bits uint32) Permissions {
		return Permissions{
			Read:    bits&4 != 0,
			Write:   bits&2 != 0,
			Execute: bits&1 != 0,
		}
	}
	return FileMode{
		Owner:  class(perm >> 6),
		Group:  class(perm >> 3),
		Other:  class(perm),
		SetUID: perm&0o4000 != 0,
		SetGID: perm&0o2000 != 0,
		Sticky: perm&0o1000 != 0,
	}
}

// MetaData describes a single archive entry.
//
// String fields longer than their header field silently truncate on encode;
// numeric fields too wide for their header field keep only their low-order
// octal digits. Callers that need strict bounds must validate upstream.
type MetaData struct {
	// Filename is the entry's name, at most 100 bytes on the wire.
	Filename string

	// Mode holds the entry's permission classes and special bits.
	Mode FileMode

	// OwnerID and GroupID are the numeric owner and group.
	OwnerID int
	GroupID int

	// FileSize is the content length in bytes. Encoding recomputes it
	// from the actual content, overriding any caller-supplied value.
	FileSize int64

	// ModTime is the last modification time in Unix epoch seconds.
	ModTime int64

	// TypeFlag identifies the entry kind.
	TypeFlag TypeFlag

	// LinkedFileName is the target of a link entry, at most 100 bytes
	// on the wire.
	LinkedFileName string

	// UserName and GroupName are the symbolic owner and group, at most
	// 32 bytes each on the wire.
	UserName  string
	GroupName string

	// FileNamePrefix extends Filename for long paths; its header field
	// holds 155 bytes.
	FileNamePrefix string
}

// DefaultMetadata returns the baseline metadata record. Callers override
// Filename (and usually FileSize, though encoding recomputes it anyway);
// decoded entries carry these values for every field decoding does not
// recover.
func DefaultMetadata() MetaData {
	return MetaData{
		Mode: FileMode{
			Owner: Permissions{Read: true, Write: true},
			Group: Permissions{Read: true},
			Other: Permissions{Read: true},
		},
		OwnerID:  1000,
		GroupID:  1000,
		TypeFlag: TypeNormalFile,
	}
}
