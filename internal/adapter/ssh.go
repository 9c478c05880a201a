package adapter

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/cleishm/MACSearch/internal/config"
	"github.com/cleishm/MACSearch/internal/domain"
)

// SSHCollector gathers MAC forwarding tables from switches over SSH
type SSHCollector struct {
	connectTimeout time.Duration
	commandTimeout time.Duration
}

// NewSSHCollector creates a collector with the given poll timeouts
func NewSSHCollector(poll config.PollConfig) *SSHCollector {
	connect := poll.ConnectTimeout.Duration()
	if connect == 0 {
		connect = 10 * time.Second
	}
	command := poll.CommandTimeout.Duration()
	if command == 0 {
		command = 30 * time.Second
	}
	return &SSHCollector{connectTimeout: connect, commandTimeout: command}
}

// Collect connects to one device, runs its platform's MAC-table command
// and returns the parsed forwarding records.
func (c *SSHCollector) Collect(ctx context.Context, dev config.DeviceConfig, cred config.CredentialConfig) ([]domain.ForwardingRecord, error) {
	cmd, err := CommandFor(dev.Platform)
	if err != nil {
		return nil, err
	}

	client, err := c.connect(ctx, dev.Address, dev.Port, cred)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	output, err := c.runCommand(client, cmd)
	if err != nil {
		return nil, err
	}

	return ParseTable(dev.Host(), output), nil
}

// connect establishes an SSH connection using the device's credential.
// Supports both key-based and password authentication.
func (c *SSHCollector) connect(ctx context.Context, address string, port int, cred config.CredentialConfig) (*ssh.Client, error) {
	sshConfig, err := buildSSHConfig(cred)
	if err != nil {
		return nil, fmt.Errorf("failed to build SSH config: %w", err)
	}
	sshConfig.Timeout = c.connectTimeout

	addr := fmt.Sprintf("%s:%d", address, port)

	dialer := &net.Dialer{
		Timeout: c.connectTimeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial: %w", err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, sshConfig)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to establish SSH connection: %w", err)
	}

	return ssh.NewClient(sshConn, chans, reqs), nil
}

// buildSSHConfig creates an SSH client config from credential material.
// A key path wins over a password when both are configured.
func buildSSHConfig(cred config.CredentialConfig) (*ssh.ClientConfig, error) {
	if cred.Username == "" {
		return nil, fmt.Errorf("credential has no username")
	}

	if cred.KeyPath != "" {
		return buildSSHKeyConfig(cred)
	}
	if cred.Password != "" {
		return &ssh.ClientConfig{
			User: cred.Username,
			Auth: []ssh.AuthMethod{
				ssh.Password(cred.Password),
			},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		}, nil
	}

	return nil, fmt.Errorf("credential has neither key_path nor password")
}

// buildSSHKeyConfig creates SSH config for key-based auth
func buildSSHKeyConfig(cred config.CredentialConfig) (*ssh.ClientConfig, error) {
	keyData, err := os.ReadFile(cred.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	var signer ssh.Signer
	if cred.Passphrase != "" {
		signer, err = ssh.ParsePrivateKeyWithPassphrase(keyData, []byte(cred.Passphrase))
	} else {
		signer, err = ssh.ParsePrivateKey(keyData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &ssh.ClientConfig{
		User: cred.Username,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}, nil
}

// runCommand executes a command over SSH and returns the output
func (c *SSHCollector) runCommand(client *ssh.Client, cmd string) (string, error) {
	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	done := make(chan error, 1)
	var output []byte

	go func() {
		output, err = session.CombinedOutput(cmd)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			// Non-zero exit still produced the table on some platforms;
			// keep the output.
			if _, ok := err.(*ssh.ExitError); ok {
				return string(output), nil
			}
			return "", fmt.Errorf("command failed: %w", err)
		}
		return string(output), nil
	case <-time.After(c.commandTimeout):
		session.Signal(ssh.SIGKILL)
		return "", fmt.Errorf("command timeout")
	}
}
