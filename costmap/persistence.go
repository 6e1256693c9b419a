package costmap

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/vtrgo/lookahead/costmodel"
	"github.com/vtrgo/lookahead/rrg"
)

// magic identifies a lookahead cost-map file; version is bumped whenever
// the on-disk layout changes incompatibly.
var magic = [4]byte{'L', 'K', 'H', 'M'}

const formatVersion uint32 = 1

// Write serialises the cost map to w as three length-prefixed sections
// (§4.5): the node-to-segment table (supplied by the caller, since the
// table itself is owned by rrg.Graph), the per-segment origin/extent
// headers, and the per-segment grids. The layout is fixed-size-record
// friendly: every Entry occupies exactly 16 bytes (two float64s), so a
// reader that has parsed the headers can seek directly to any cell without
// touching the rest of the file.
//
// An invalid Entry is encoded with its delay as NaN; Read recognises this
// as the sentinel rather than storing a separate validity byte.
func (c *CostMap) Write(w io.Writer, nodeSegment []rrg.SegmentID) error {
	if err := writeAll(w, magic[:], formatVersion); err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(nodeSegment))); err != nil {
		return err
	}
	for _, seg := range nodeSegment {
		if err := binary.Write(w, binary.LittleEndian, int32(seg)); err != nil {
			return err
		}
	}

	segs := c.Segments()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(segs))); err != nil {
		return err
	}
	for _, seg := range segs {
		g := c.grids[seg]
		header := [5]int32{int32(seg), int32(g.ox), int32(g.oy), int32(g.w), int32(g.h)}
		if err := binary.Write(w, binary.LittleEndian, header); err != nil {
			return err
		}
	}

	for _, seg := range segs {
		g := c.grids[seg]
		for _, e := range g.cells {
			delay := e.Delay
			if !e.Valid {
				delay = math.NaN()
			}
			if err := binary.Write(w, binary.LittleEndian, [2]float64{delay, e.Congestion}); err != nil {
				return err
			}
		}
	}

	return nil
}

// Read deserialises a cost map previously written by Write, returning it
// alongside the node-to-segment table it was written with. Returns
// ErrMagicMismatch or ErrVersionMismatch on a file this build cannot
// interpret, or ErrTruncated if a declared section runs past EOF.
func Read(r io.Reader) (*CostMap, []rrg.SegmentID, error) {
	var gotMagic [4]byte
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, nil, wrapTruncated(err)
	}
	if gotMagic != magic {
		return nil, nil, ErrMagicMismatch
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, nil, wrapTruncated(err)
	}
	if version != formatVersion {
		return nil, nil, ErrVersionMismatch
	}

	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, nil, wrapTruncated(err)
	}
	nodeSegment := make([]rrg.SegmentID, nodeCount)
	for i := range nodeSegment {
		var seg int32
		if err := binary.Read(r, binary.LittleEndian, &seg); err != nil {
			return nil, nil, wrapTruncated(err)
		}
		nodeSegment[i] = rrg.SegmentID(seg)
	}

	var segCount uint32
	if err := binary.Read(r, binary.LittleEndian, &segCount); err != nil {
		return nil, nil, wrapTruncated(err)
	}

	type header struct {
		seg    rrg.SegmentID
		ox, oy int
		w, h   int
	}
	headers := make([]header, segCount)
	for i := range headers {
		var raw [5]int32
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return nil, nil, wrapTruncated(err)
		}
		headers[i] = header{
			seg: rrg.SegmentID(raw[0]),
			ox:  int(raw[1]), oy: int(raw[2]),
			w: int(raw[3]), h: int(raw[4]),
		}
	}

	c := New()
	for _, h := range headers {
		g := newGrid(h.ox, h.oy, h.w, h.h)
		for i := range g.cells {
			var raw [2]float64
			if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
				return nil, nil, wrapTruncated(err)
			}
			delay, congestion := raw[0], raw[1]
			valid := !math.IsNaN(delay)
			if !valid {
				delay = 0
			}
			g.cells[i] = costmodel.Entry{
				Delay:      delay,
				Congestion: congestion,
				Valid:      valid,
			}
		}
		c.grids[h.seg] = g
	}

	return c, nodeSegment, nil
}

func writeAll(w io.Writer, magic []byte, version uint32) error {
	if _, err := w.Write(magic); err != nil {
		return err
	}

	return binary.Write(w, binary.LittleEndian, version)
}

func wrapTruncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}

	return err
}
