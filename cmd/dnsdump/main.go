// Command dnsdump decodes DNS messages, either a single one captured from
// a hex string / file or each one read live off a UDP socket, and prints
// them in a dig-like format. It never builds or sends a response.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"os"

	"dnswire/dns"
	"dnswire/dns/message"
	"dnswire/internal/dnslog"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:2053", "UDP address to listen on")
	hexPacket := flag.String("hex", "", "decode a single hex-encoded DNS message and exit")
	file := flag.String("file", "", "decode a single raw DNS message read from this file and exit")
	verbose := flag.Bool("verbose", false, "log a structured line per decoded message")
	flag.Parse()

	logger := dnslog.New()

	switch {
	case *hexPacket != "":
		buf, err := hex.DecodeString(*hexPacket)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -hex input: %v\n", err)
			os.Exit(1)
		}
		decodeAndPrint(buf, logger, *verbose)

	case *file != "":
		buf, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading -file: %v\n", err)
			os.Exit(1)
		}
		decodeAndPrint(buf, logger, *verbose)

	default:
		listen(*addr, logger, *verbose)
	}
}

// listen dumps every inbound UDP datagram on addr until the process is
// killed. It never responds.
func listen(addr string, logger dnslog.Logger, verbose bool) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't resolve address: %v\n", err)
		os.Exit(1)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't listen: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("dnsdump listening on %s\n", addr)

	buffer := make([]byte, 2048)
	for {
		n, source, err := conn.ReadFromUDP(buffer)
		if err != nil {
			logger.Error(map[string]any{"err": err.Error()}, "read failed")
			continue
		}

		logger.Debug(map[string]any{"source": source.String(), "bytes": n}, "received datagram")
		decodeAndPrint(buffer[:n], logger, verbose)
	}
}

func decodeAndPrint(buf []byte, logger dnslog.Logger, verbose bool) {
	msg, err := dns.Decode(buf)
	if err != nil {
		logger.Error(map[string]any{"err": err.Error(), "bytes": len(buf)}, "decode failed")
		fmt.Fprintf(os.Stderr, "decode failed: %v\n", err)
		return
	}

	if verbose {
		logger.Debug(map[string]any{
			"id":        msg.Header.ID,
			"qdcount":   len(msg.Question),
			"ancount":   len(msg.Answer),
			"nscount":   len(msg.Authority),
			"arcount":   len(msg.Additional),
			"truncated": msg.Header.TC,
			"rcode":     msg.Header.Rcode,
		}, "decoded message")
	}

	printMessage(msg)
}

func printMessage(msg *message.Message) {
	fmt.Printf(";; ->>HEADER<<- opcode: %d, status: %s, id: %d\n", msg.Header.Opcode, rcodeName(msg.Header.Rcode), msg.Header.ID)
	fmt.Printf(";; flags: %s; QUERY: %d, ANSWER: %d, AUTHORITY: %d, ADDITIONAL: %d\n\n",
		flagSummary(msg.Header), len(msg.Question), len(msg.Answer), len(msg.Authority), len(msg.Additional))

	if len(msg.Question) > 0 {
		fmt.Println(";; QUESTION SECTION:")
		for _, q := range msg.Question {
			fmt.Printf(";%s.\t\tIN\t%s\n", q.Name, typeName(q.Type))
		}
		fmt.Println()
	}

	printSection("ANSWER", msg.Answer)
	printSection("AUTHORITY", msg.Authority)
	printSection("ADDITIONAL", msg.Additional)
}

func printSection(title string, rrs []message.ResourceRecord) {
	if len(rrs) == 0 {
		return
	}
	fmt.Printf(";; %s SECTION:\n", title)
	for _, rr := range rrs {
		fmt.Printf("%s.\t%d\tIN\t%s\t%s\n", rr.Name, rr.TTL, typeName(rr.Type), rdataString(rr))
	}
	fmt.Println()
}
