//go:build linux

package fsmap

import (
	"time"

	"golang.org/x/sys/unix"
)

func statPath(path string) (Stat, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Stat{}, err
	}
	return Stat{
		Size:  st.Size,
		Mode:  protFromUnixMode(st.Mode),
		Type:  typeFromUnixMode(st.Mode),
		Mtime: time.Unix(st.Mtim.Sec, st.Mtim.Nsec),
	}, nil
}

func protFromUnixMode(mode uint32) ProtFlags {
	var p ProtFlags
	if mode&unix.S_IRUSR != 0 {
		p |= ProtUserRead
	}
	if mode&unix.S_IWUSR != 0 {
		p |= ProtUserWrite
	}
	if mode&unix.S_IXUSR != 0 {
		p |= ProtUserExecute
	}
	if mode&unix.S_IRGRP != 0 {
		p |= ProtGroupRead
	}
	if mode&unix.S_IWGRP != 0 {
		p |= ProtGroupWrite
	}
	if mode&unix.S_IXGRP != 0 {
		p |= ProtGroupExecute
	}
	if mode&unix.S_IROTH != 0 {
		p |= ProtAllRead
	}
	if mode&unix.S_IWOTH != 0 {
		p |= ProtAllWrite
	}
	if mode&unix.S_IXOTH != 0 {
		p |= ProtAllExecute
	}
	if mode&unix.S_ISUID != 0 {
		p |= ProtSetUid
	}
	if mode&unix.S_ISGID != 0 {
		p |= ProtSetGid
	}
	return p
}

func typeFromUnixMode(mode uint32) FileType {
	switch mode & unix.S_IFMT {
	case unix.S_IFREG:
		return TypeFile
	case unix.S_IFDIR:
		return TypeDir
	case unix.S_IFLNK:
		return TypeSymlink
	default:
		return TypeOther
	}
}
