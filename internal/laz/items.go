package laz

import "fmt"

// ItemType identifies one component of a point record.
type ItemType uint16

const (
	ItemByte         ItemType = 0
	ItemPoint10      ItemType = 6
	ItemGpsTime      ItemType = 7
	ItemRGB12        ItemType = 8
	ItemWavePacket13 ItemType = 9
	ItemPoint14      ItemType = 10
	ItemRGB14        ItemType = 11
	ItemRGBNIR14     ItemType = 12
	ItemWavePacket14 ItemType = 13
	ItemByte14       ItemType = 14
)

func (t ItemType) String() string {
	switch t {
	case ItemByte:
		return "Byte"
	case ItemPoint10:
		return "Point10"
	case ItemGpsTime:
		return "GpsTime"
	case ItemRGB12:
		return "RGB12"
	case ItemWavePacket13:
		return "WavePacket13"
	case ItemPoint14:
		return "Point14"
	case ItemRGB14:
		return "RGB14"
	case ItemRGBNIR14:
		return "RGBNIR14"
	case ItemWavePacket14:
		return "WavePacket14"
	case ItemByte14:
		return "Byte14"
	default:
		return fmt.Sprintf("ItemType(%d)", uint16(t))
	}
}

// fixedSize returns the record size of items whose size does not depend on
// the point format. Byte items report false.
func (t ItemType) fixedSize() (uint16, bool) {
	switch t {
	case ItemPoint10:
		return 20, true
	case ItemGpsTime:
		return 8, true
	case ItemRGB12, ItemRGB14:
		return 6, true
	case ItemWavePacket13, ItemWavePacket14:
		return 29, true
	case ItemPoint14:
		return 30, true
	case ItemRGBNIR14:
		return 8, true
	default:
		return 0, false
	}
}

func (t ItemType) known() bool {
	if t == ItemByte || t == ItemByte14 {
		return true
	}
	_, ok := t.fixedSize()
	return ok
}

func (t ItemType) supportsVersion(version uint16) bool {
	switch t {
	case ItemByte, ItemPoint10, ItemGpsTime, ItemRGB12, ItemWavePacket13:
		return version == 1 || version == 2
	default:
		return version == 3 || version == 4
	}
}

// LazItem is one entry of the item list of a LASzip VLR.
type LazItem struct {
	Type    ItemType
	Size    uint16
	Version uint16
}

func (i LazItem) validate() error {
	if !i.Type.known() {
		return errorf(KindUnknownLazItem, "item", "item type %d", uint16(i.Type))
	}
	if !i.Type.supportsVersion(i.Version) {
		return errorf(KindUnsupportedLazItemVersion, "item", "%v version %d", i.Type, i.Version)
	}
	if size, ok := i.Type.fixedSize(); ok && size != i.Size {
		return errorf(KindOther, "item", "%v has size %d, expected %d", i.Type, i.Size, size)
	}
	if i.Size == 0 {
		return errorf(KindOther, "item", "%v has size 0", i.Type)
	}
	return nil
}

// ItemsForPointFormat builds the item list of a point format with the given
// number of extra bytes per point.
func ItemsForPointFormat(formatID uint8, numExtraBytes uint16) ([]LazItem, error) {
	var items []LazItem

	switch formatID {
	case 0, 1, 2, 3, 4, 5:
		items = append(items, LazItem{Type: ItemPoint10, Size: 20, Version: 2})
		if formatID != 0 && formatID != 2 {
			items = append(items, LazItem{Type: ItemGpsTime, Size: 8, Version: 2})
		}
		if formatID == 2 || formatID == 3 || formatID == 5 {
			items = append(items, LazItem{Type: ItemRGB12, Size: 6, Version: 2})
		}
		if formatID == 4 || formatID == 5 {
			items = append(items, LazItem{Type: ItemWavePacket13, Size: 29, Version: 1})
		}
		if numExtraBytes > 0 {
			items = append(items, LazItem{Type: ItemByte, Size: numExtraBytes, Version: 2})
		}
	case 6, 7, 8, 9, 10:
		items = append(items, LazItem{Type: ItemPoint14, Size: 30, Version: 3})
		switch formatID {
		case 7:
			items = append(items, LazItem{Type: ItemRGB14, Size: 6, Version: 3})
		case 8, 10:
			items = append(items, LazItem{Type: ItemRGBNIR14, Size: 8, Version: 3})
		}
		if formatID == 9 || formatID == 10 {
			items = append(items, LazItem{Type: ItemWavePacket14, Size: 29, Version: 3})
		}
		if numExtraBytes > 0 {
			items = append(items, LazItem{Type: ItemByte14, Size: numExtraBytes, Version: 3})
		}
	default:
		return nil, errorf(KindUnsupportedPointFormat, "items", "point format %d", formatID)
	}

	return items, nil
}
