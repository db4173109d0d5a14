package main

import (
	"encoding/binary"
	"net"

	"github.com/sirupsen/logrus"

	"github.com/nilroute/etharp"
)

// tracingLink wraps a LinkOutputter with a logrus-based trace log of every
// outbound frame, opted into via --trace. Generalized from the teacher's
// logger/log.go, which gates similarly verbose per-packet logging behind a
// boolean flag rather than a log level alone.
type tracingLink struct {
	next etharp.LinkOutputter
	log  *logrus.Logger
}

func newTracingLink(next etharp.LinkOutputter) *tracingLink {
	l := logrus.New()
	l.SetLevel(logrus.TraceLevel)
	return &tracingLink{next: next, log: l}
}

func (t *tracingLink) LinkOutput(iface *etharp.Interface, frame []byte) error {
	if len(frame) >= etharp.EthernetHeaderLen {
		t.log.WithFields(logrus.Fields{
			"iface":     iface.Name,
			"dest":      net.HardwareAddr(frame[0:6]).String(),
			"src":       net.HardwareAddr(frame[6:12]).String(),
			"ethertype": binary.BigEndian.Uint16(frame[12:14]),
			"bytes":     len(frame),
		}).Trace("etharpd: outbound frame")
	}
	return t.next.LinkOutput(iface, frame)
}
