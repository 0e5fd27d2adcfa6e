// Package console speaks the emulator's line-oriented telnet console
// protocol: a banner on connect, "auth <token>", one command per line,
// replies terminated by an "OK" or "KO: <reason>" line.
package console

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"
)

// ProtocolError reports a console exchange that was not acknowledged.
type ProtocolError struct {
	Command string
	Reply   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("console rejected %q: %s", e.Command, e.Reply)
}

// Client is one authenticated console connection.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

// Dial connects to the console and consumes the banner. The returned
// client is unauthenticated; call Auth before issuing commands.
func Dial(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to console at %s: %w", addr, err)
	}

	c := &Client{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: timeout,
	}

	// The emulator greets with a multi-line banner ending in "OK".
	if _, err := c.readReply(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to read console banner: %w", err)
	}

	slog.Debug("[Console] Connected", "addr", addr)
	return c, nil
}

// Close terminates the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Auth presents the console auth token.
func (c *Client) Auth(token string) error {
	return c.Command("auth " + token)
}

// RewindAudio resets the virtual microphone's playback position.
func (c *Client) RewindAudio() error {
	return c.Command("avd rewindaudio")
}

// Quit tells the console we are done. The emulator closes the connection
// without a reply, so none is read.
func (c *Client) Quit() error {
	return c.send("quit")
}

// Command sends one console command and waits for its acknowledgement.
func (c *Client) Command(cmd string) error {
	if err := c.send(cmd); err != nil {
		return err
	}

	reply, err := c.readReply()
	if err != nil {
		return fmt.Errorf("failed to read reply for %q: %w", firstWord(cmd), err)
	}
	if !strings.HasPrefix(reply, "OK") {
		return &ProtocolError{Command: firstWord(cmd), Reply: reply}
	}

	slog.Debug("[Console] Command acknowledged", "command", firstWord(cmd))
	return nil
}

func (c *Client) send(cmd string) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return err
	}
	if _, err := c.conn.Write([]byte(cmd + "\r\n")); err != nil {
		return fmt.Errorf("failed to send %q: %w", firstWord(cmd), err)
	}
	return nil
}

// readReply consumes lines until the terminating "OK" or "KO" line and
// returns that line.
func (c *Client) readReply() (string, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return "", err
	}
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "OK") || strings.HasPrefix(line, "KO") {
			return line, nil
		}
	}
}

// firstWord keeps auth tokens out of error messages and logs.
func firstWord(cmd string) string {
	if i := strings.IndexByte(cmd, ' '); i > 0 {
		return cmd[:i]
	}
	return cmd
}
